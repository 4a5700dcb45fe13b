package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Notifier is the contract for telling an agent one of their leads
// closed. The SMTP sender in infra/mail implements it.
type Notifier interface {
	SendLeadClosed(to, agentName, leadName string) error
}

// Worker consumes lead-closed events and fans them out as agent
// notifications, fully decoupled from the store.
type Worker struct {
	Channel  *amqp.Channel
	Notifier Notifier
}

func NewWorker(ch *amqp.Channel, notifier Notifier) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadClosedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("[worker] malformed lead event, dropping: %s", err)
				// Malformed message. Reject without requeue so it dead-letters
				// instead of wedging the queue.
				d.Nack(false, false)
				continue
			}

			if err := w.process(payload); err != nil {
				log.Printf("[worker] notification failed for lead %s: %s", payload.LeadID, err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf("[worker] consuming lead events from %q", queueName)
	<-forever
}

func (w *Worker) process(payload LeadClosedPayload) error {
	if payload.AgentEmail == "" {
		// Agent vanished between close and delivery. Nothing to notify.
		log.Printf("[worker] lead %s closed with no reachable agent, skipping", payload.LeadID)
		return nil
	}

	return w.Notifier.SendLeadClosed(payload.AgentEmail, payload.AgentName, payload.LeadName)
}
