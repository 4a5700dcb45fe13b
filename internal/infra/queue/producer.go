package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadClosedPayload announces a lead entering the Closed status. The
// agent projection is captured at publish time so consumers never have
// to call back into the store.
type LeadClosedPayload struct {
	LeadID     string    `json:"lead_id"`
	LeadName   string    `json:"lead_name"`
	AgentID    string    `json:"agent_id"`
	AgentName  string    `json:"agent_name"`
	AgentEmail string    `json:"agent_email"`
	ClosedAt   time.Time `json:"closed_at"`
}

type LeadEventProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *LeadEventProducer {
	return &LeadEventProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *LeadEventProducer) PublishLeadClosed(ctx context.Context, payload LeadClosedPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to RabbitMQ: %w", err)
	}

	return nil
}
