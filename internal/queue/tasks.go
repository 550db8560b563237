package queue

import (
	"encoding/json"

	"github.com/attarah-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskUserProvision materializes the storefront user record for an account
	TaskUserProvision = constants.TaskUserProvision
	// TaskOrderConfirmation sends the order confirmation notification
	TaskOrderConfirmation = constants.TaskOrderConfirmation
)

// UserProvisionPayload user provisioning task payload
type UserProvisionPayload struct {
	AccountID uint `json:"account_id"`
}

// OrderConfirmationPayload order confirmation task payload
type OrderConfirmationPayload struct {
	OrderID uint `json:"order_id"`
}

// NewUserProvisionTask creates a user provisioning task
func NewUserProvisionTask(payload UserProvisionPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskUserProvision, body), nil
}

// NewOrderConfirmationTask creates an order confirmation task
func NewOrderConfirmationTask(payload OrderConfirmationPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderConfirmation, body), nil
}
