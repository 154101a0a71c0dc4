package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

type EntityKind string

const (
	KindLead     EntityKind = "lead"
	KindProposal EntityKind = "proposal"
)

// AssignmentPayload is published when a lead or proposal gets an assignee.
type AssignmentPayload struct {
	Kind          EntityKind `json:"kind"`
	EntityID      string     `json:"entity_id"`
	EntityTitle   string     `json:"entity_title"`
	AssigneeID    string     `json:"assignee_id"`
	AssigneeName  string     `json:"assignee_name"`
	AssigneeEmail string     `json:"assignee_email"`
	AssignedBy    string     `json:"assigned_by"`
}

// ReminderPayload is published for negotiating leads that went quiet.
type ReminderPayload struct {
	LeadID        string `json:"lead_id"`
	Company       string `json:"company"`
	AssigneeID    string `json:"assignee_id"`
	AssigneeEmail string `json:"assignee_email"`
	LastFollowUp  string `json:"last_follow_up"`
}

type envelope struct {
	Type       string          `json:"type"` // "assignment" | "reminder"
	Assignment json.RawMessage `json:"assignment,omitempty"`
	Reminder   json.RawMessage `json:"reminder,omitempty"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishAssignment(ctx context.Context, payload AssignmentPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode assignment payload: %w", err)
	}
	return p.publish(ctx, envelope{Type: "assignment", Assignment: raw})
}

func (p *RabbitMQProducer) PublishReminder(ctx context.Context, payload ReminderPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode reminder payload: %w", err)
	}
	return p.publish(ctx, envelope{Type: "reminder", Reminder: raw})
}

func (p *RabbitMQProducer) publish(ctx context.Context, env envelope) error {
	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
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
		return fmt.Errorf("publish to RabbitMQ: %w", err)
	}
	return nil
}
