package notify

import (
	"context"
	"encoding/json"

	"food-delivery/internal/app/api"
	"food-delivery/internal/common/config"
	"food-delivery/internal/common/logger"
	"food-delivery/internal/common/mq"
)

// Run consumes order confirmation events and logs the customer
// notification for each one, acking only after it is handled.
func Run(ctx context.Context, cfg config.App) error {
	lg := logger.New("notification-subscriber")

	client, err := mq.Dial(cfg.Rabbit)
	if err != nil {
		return err
	}
	defer client.Close()
	if err := client.DeclareAll(); err != nil {
		return err
	}

	deliveries, err := client.Consume(mq.NotificationsQueue, "notification-subscriber", 1)
	if err != nil {
		return err
	}
	lg.Info("subscriber_started", map[string]any{"queue": mq.NotificationsQueue})

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			var event api.OrderConfirmedEvent
			if err := json.Unmarshal(d.Body, &event); err != nil {
				lg.Error("event_decode_failed", err, nil)
				_ = d.Nack(false, false)
				continue
			}
			lg.Info("order_notification", map[string]any{
				"order_id":           event.OrderID,
				"email":              event.Email,
				"restaurant":         event.Restaurant,
				"delivery_address":   event.DeliveryAddress,
				"total":              event.Total.String(),
				"estimated_delivery": event.EstimatedDelivery,
			})
			_ = d.Ack(false)
		}
	}
}
