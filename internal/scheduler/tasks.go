package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// TaskLeadRescore re-grades a single lead after its data changed.
const TaskLeadRescore = "leads.rescore"

// TaskLeadRescoreAll re-grades every lead, used after a profile change or
// a scoring model adjustment.
const TaskLeadRescoreAll = "leads.rescore_all"

type LeadRescorePayload struct {
	LeadID string `json:"leadId"`
}

func NewLeadRescoreTask(payload LeadRescorePayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLeadRescore, data), nil
}

func ParseLeadRescorePayload(task *asynq.Task) (LeadRescorePayload, error) {
	var payload LeadRescorePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return LeadRescorePayload{}, err
	}
	return payload, nil
}

func NewLeadRescoreAllTask() *asynq.Task {
	return asynq.NewTask(TaskLeadRescoreAll, nil)
}
