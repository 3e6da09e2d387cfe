package tasks

import (
	"encoding/json"

	"glowbook/models"

	"github.com/hibiken/asynq"
)

const TypeBookingConfirmed = "booking:confirmed"

// NewBookingConfirmedTask wraps a confirmation payload into an asynq task.
func NewBookingConfirmedTask(payload models.ConfirmationPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingConfirmed, b), nil
}
