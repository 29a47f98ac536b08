package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// EngagementPayload is published after every recorded engagement so
// downstream consumers (snapshot generation, analytics) see warmth changes.
type EngagementPayload struct {
	ProspectID  string `json:"prospect_id"`
	Type        string `json:"type"`
	Date        string `json:"date"`
	Note        string `json:"note"`
	Status      string `json:"status"`
	WarmthScore int    `json:"warmth_score"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishEngagement(ctx context.Context, payload EngagementPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish engagement event: %w", err)
	}
	return nil
}
