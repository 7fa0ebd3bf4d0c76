package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"antshop/config"
	"antshop/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeCheckoutCreated = "checkout:created"

// OrderEventPayload is the body of a checkout:created task.
type OrderEventPayload struct {
	SessionID    string    `json:"session_id"`
	ProductID    string    `json:"product_id"`
	ProductName  string    `json:"product_name"`
	Quantity     int       `json:"quantity"`
	AmountMinor  int64     `json:"amount_minor"`
	Address      string    `json:"address"`
	DeliverySlot string    `json:"delivery_slot"`
	CheckoutURL  string    `json:"checkout_url"`
	CheckoutID   string    `json:"checkout_id,omitempty"`
	Simulated    bool      `json:"simulated"`
	CreatedAt    time.Time `json:"created_at"`
}

func redisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NewCheckoutCreatedTask builds the task for one issued checkout URL.
func NewCheckoutCreatedTask(req models.CheckoutRequest, res *models.CheckoutResult) (*asynq.Task, error) {
	p := OrderEventPayload{
		SessionID:    req.SessionID,
		ProductID:    req.Product.ID,
		ProductName:  req.Product.Name,
		Quantity:     req.Quantity,
		AmountMinor:  req.AmountMinor(),
		Address:      req.Address,
		DeliverySlot: req.DeliverySlot,
		CheckoutURL:  res.URL,
		CheckoutID:   res.ProviderID,
		Simulated:    res.Simulated,
		CreatedAt:    res.CreatedAt,
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode order event: %w", err)
	}
	return asynq.NewTask(TypeCheckoutCreated, b, asynq.MaxRetry(5), asynq.Timeout(30*time.Second)), nil
}

// InitOrderWorker starts the async worker in background. Call Shutdown on the
// returned server when the process stops.
func InitOrderWorker(logger *zap.Logger) (*asynq.Server, error) {
	srv := asynq.NewServer(
		redisOpt(),
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCheckoutCreated, handleCheckoutCreated(logger))

	if err := srv.Start(mux); err != nil {
		return nil, fmt.Errorf("start order worker: %w", err)
	}
	logger.Info("order event worker started", zap.String("redis", config.AppConfig.RedisAddr))
	return srv, nil
}

func handleCheckoutCreated(logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p OrderEventPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid order event payload", zap.Error(err))
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}

		logger.Info("checkout issued",
			zap.String("session_id", p.SessionID),
			zap.String("product_id", p.ProductID),
			zap.Int("quantity", p.Quantity),
			zap.Int64("amount_minor", p.AmountMinor),
			zap.String("delivery_slot", p.DeliverySlot),
			zap.String("checkout_id", p.CheckoutID),
			zap.Bool("simulated", p.Simulated),
		)
		return nil
	}
}
