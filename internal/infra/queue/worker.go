package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/lead-cms/internal/infra/mail"
)

// NotificationSender is what the worker needs from the mail layer.
type NotificationSender interface {
	SendAssignment(to string, data mail.AssignmentEmailData) error
}

// Worker drains the notification queue and turns events into emails. It is
// fully decoupled from the stores: everything it needs rides in the payload.
type Worker struct {
	Channel *amqp.Channel
	Mailer  NotificationSender
}

func NewWorker(ch *amqp.Channel, mailer NotificationSender) *Worker {
	return &Worker{Channel: ch, Mailer: mailer}
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
		log.Fatalf("❌ failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var env envelope
			if err := json.Unmarshal(d.Body, &env); err != nil {
				log.Printf("❌ [WORKER] malformed message, dropping: %s", err)
				// Poison message. Reject without requeue so it lands on the DLQ.
				d.Nack(false, false)
				continue
			}

			if err := w.process(env); err != nil {
				log.Printf("❌ [WORKER] notification failed: %s", err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] notification worker waiting on queue '%s'", queueName)
	<-forever
}

func (w *Worker) process(env envelope) error {
	switch env.Type {
	case "assignment":
		var payload AssignmentPayload
		if err := json.Unmarshal(env.Assignment, &payload); err != nil {
			return err
		}
		log.Printf("⚙️ [WORKER] assignment of %s %q -> %s", payload.Kind, payload.EntityTitle, payload.AssigneeEmail)
		return w.Mailer.SendAssignment(payload.AssigneeEmail, mail.AssignmentEmailData{
			AssigneeName: payload.AssigneeName,
			EntityKind:   string(payload.Kind),
			EntityTitle:  payload.EntityTitle,
			AssignedBy:   payload.AssignedBy,
		})

	case "reminder":
		var payload ReminderPayload
		if err := json.Unmarshal(env.Reminder, &payload); err != nil {
			return err
		}
		log.Printf("⏰ [WORKER] follow-up reminder for lead %q -> %s", payload.Company, payload.AssigneeEmail)
		return w.Mailer.SendAssignment(payload.AssigneeEmail, mail.AssignmentEmailData{
			AssigneeName: payload.AssigneeEmail,
			EntityKind:   "lead follow-up reminder",
			EntityTitle:  payload.Company,
			AssignedBy:   "Lead CMS",
		})

	default:
		// Unknown event type: ack it away, there is nothing useful to retry.
		log.Printf("⚠️ [WORKER] unknown event type %q, dropping", env.Type)
		return nil
	}
}
