package worker

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/attarah-next/internal/logger"
	"github.com/attarah-next/internal/provider"
	"github.com/attarah-next/internal/queue"
	"github.com/attarah-next/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer async task consumer
type Consumer struct {
	*provider.Container
}

// NewConsumer creates the consumer
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register registers the task handlers
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskUserProvision, c.handleUserProvision)
	mux.HandleFunc(queue.TaskOrderConfirmation, c.handleOrderConfirmation)
}

// handleUserProvision materializes the storefront user record for a
// freshly registered account.
func (c *Consumer) handleUserProvision(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_user_provision_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.UserProvisionPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_user_provision_unmarshal_failed", "error", err)
		return err
	}
	if payload.AccountID == 0 {
		logger.Debugw("worker_user_provision_skip_invalid_payload", "account_id", payload.AccountID)
		return nil
	}
	if c.UserAuthService == nil {
		logger.Warnw("worker_user_provision_skip_auth_service_nil", "account_id", payload.AccountID)
		return nil
	}
	if _, err := c.UserAuthService.ProvisionUser(payload.AccountID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			logger.Debugw("worker_user_provision_skip_account_not_found", "account_id", payload.AccountID)
			return nil
		}
		logger.Warnw("worker_user_provision_failed", "account_id", payload.AccountID, "error", err)
		return err
	}
	return nil
}

// handleOrderConfirmation records the order confirmation. Delivery is
// log-only: the task is logged with the receiver and totals and
// considered done.
func (c *Consumer) handleOrderConfirmation(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_confirmation_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderConfirmationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_confirmation_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_confirmation_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_confirmation_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_confirmation_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}

	receiverEmail := ""
	if order.UserID != 0 && c.UserRepo != nil {
		user, err := c.UserRepo.GetByID(order.UserID)
		if err != nil {
			logger.Warnw("worker_order_confirmation_fetch_user_failed", "order_id", order.ID, "user_id", order.UserID, "error", err)
			return err
		}
		if user != nil {
			receiverEmail = user.Email
		}
	}
	if receiverEmail == "" {
		logger.Debugw("worker_order_confirmation_skip_empty_receiver", "order_id", order.ID, "code", order.Code)
		return nil
	}

	// delivery is log-only until an SMTP sender exists, even with
	// email enabled in the config
	if c.Config != nil && c.Config.Email.Enabled {
		logger.Warnw("worker_order_confirmation_delivery_skipped",
			"order_id", order.ID,
			"code", order.Code,
			"from", c.Config.Email.From,
		)
	}
	logger.Infow("worker_order_confirmation_logged",
		"order_id", order.ID,
		"code", order.Code,
		"receiver_email", receiverEmail,
		"total", order.TotalPrice.String(),
		"currency", order.CurrencyCode,
	)
	return nil
}
