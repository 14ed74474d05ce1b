package service

import (
	"strings"
	"time"

	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/leads/repository"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/registry"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/phone"
)

// Engagement signal weights. Showings are the strongest intent signal,
// property views next, passive email opens weakest. The sum is capped at
// 100 so a handful of showings saturates the signal.
const (
	viewPoints    = 8
	openPoints    = 3
	showingPoints = 15
)

// Timeline keyword brackets, matched case-insensitively as substrings of
// the lead's free-text timeline. First match wins, checked urgent-first.
// Text that matches nothing becomes the explicit "unspecified" bracket: the
// lead declared no urgency, which is a real (low) signal, not missing data.
var timelineBrackets = []struct {
	bracket  string
	keywords []string
}{
	{"immediate", []string{"asap", "immediately", "right away", "now", "urgent"}},
	{"short_term", []string{"1-3 month", "couple of months", "few months", "this quarter", "soon"}},
	{"mid_term", []string{"3-6 month", "6 month", "this year", "within the year"}},
	{"long_term", []string{"next year", "12 month", "someday", "just looking", "browsing"}},
}

// AssembleAttributes derives the five fixed grading signals from a lead
// record. Only the budget can be genuinely missing; every other signal has
// a defined value for any lead, so a cold lead scores low rather than
// hiding behind midpoint placeholders.
func AssembleAttributes(lead *repository.Lead, now time.Time) scoring.AttributeMap {
	attrs := scoring.AttributeMap{
		registry.FactorLeadTimeline:   scoring.CategoryCode(timelineBracket(lead.TimelineText)),
		registry.FactorLeadEngagement: scoring.Number(engagementSignal(lead)),
		registry.FactorLeadContact:    scoring.Number(contactSignal(lead)),
		registry.FactorLeadRecency:    scoring.Number(recencySignal(lead.LastContactAt, now)),
	}
	if lead.Budget != nil {
		attrs[registry.FactorLeadBudget] = scoring.Number(budgetSignal(*lead.Budget))
	}
	return attrs
}

// GradingProfile is the fixed profile every lead is graded with: the five
// lead factors at their catalog weights, hot/warm/cold classification.
// Owners cannot edit it.
func GradingProfile() scoring.PreferenceProfile {
	return scoring.PreferenceProfile{
		Factors:        registry.DefaultSelections(registry.LeadFactors()),
		Classification: scoring.LeadClassification(),
	}
}

// budgetSignal maps a stated budget onto 0-100 purchasing-power brackets.
func budgetSignal(budget float64) float64 {
	switch {
	case budget >= 500000:
		return 100
	case budget >= 350000:
		return 80
	case budget >= 200000:
		return 60
	case budget >= 100000:
		return 40
	case budget > 0:
		return 20
	default:
		return 0
	}
}

func timelineBracket(text *string) string {
	if text == nil {
		return "unspecified"
	}
	lowered := strings.ToLower(*text)
	for _, tb := range timelineBrackets {
		for _, keyword := range tb.keywords {
			if strings.Contains(lowered, keyword) {
				return tb.bracket
			}
		}
	}
	return "unspecified"
}

func engagementSignal(lead *repository.Lead) float64 {
	points := float64(viewPoints*lead.PropertyViews + openPoints*lead.EmailOpens + showingPoints*lead.ShowingsAttended)
	if points > 100 {
		return 100
	}
	return points
}

// contactSignal scores contact completeness: a dialable phone plus an email
// means the agent can always reach the lead. A phone that fails parsing
// counts as absent.
func contactSignal(lead *repository.Lead) float64 {
	hasEmail := lead.Email != nil && strings.TrimSpace(*lead.Email) != ""
	hasPhone := lead.Phone != nil && phone.IsValid(*lead.Phone)

	switch {
	case hasEmail && hasPhone:
		return 100
	case hasEmail || hasPhone:
		return 40
	default:
		return 0
	}
}

// recencySignal decays with days since last contact. A lead never contacted
// scores zero: there is no relationship to keep warm.
func recencySignal(lastContact *time.Time, now time.Time) float64 {
	if lastContact == nil {
		return 0
	}
	days := now.Sub(*lastContact).Hours() / 24

	switch {
	case days <= 1:
		return 100
	case days <= 7:
		return 80
	case days <= 14:
		return 60
	case days <= 30:
		return 40
	case days <= 45:
		return 20
	default:
		return 0
	}
}
