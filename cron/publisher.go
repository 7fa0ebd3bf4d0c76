package cron

import (
	"context"
	"fmt"

	"antshop/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// OrderPublisher enqueues checkout:created tasks. It satisfies dialogue.OrderNotifier.
type OrderPublisher struct {
	client enqueuer
	closer func() error
	logger *zap.Logger
}

// NewOrderPublisher connects to the queue database from AppConfig.
func NewOrderPublisher(logger *zap.Logger) *OrderPublisher {
	client := asynq.NewClient(redisOpt())
	return &OrderPublisher{client: client, closer: client.Close, logger: logger}
}

func (p *OrderPublisher) CheckoutCreated(ctx context.Context, req models.CheckoutRequest, res *models.CheckoutResult) error {
	task, err := NewCheckoutCreatedTask(req, res)
	if err != nil {
		return err
	}
	info, err := p.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", TypeCheckoutCreated, err)
	}
	p.logger.Debug("order event enqueued", zap.String("task_id", info.ID), zap.String("session_id", req.SessionID))
	return nil
}

func (p *OrderPublisher) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer()
}
