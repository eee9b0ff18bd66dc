package api

import (
	"context"
	"encoding/json"
	"fmt"

	"food-delivery/internal/common/mq"
)

// MQPublisher sends confirmation events through the RabbitMQ fanout.
type MQPublisher struct {
	Client *mq.Client
}

func (p MQPublisher) PublishOrderConfirmed(ctx context.Context, event OrderConfirmedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}
	return p.Client.Publish(ctx, mq.NotificationsExchange, "", body)
}
