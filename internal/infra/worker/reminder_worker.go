package worker

import (
	"context"
	"log"
	"time"

	"github.com/xavierca1/lead-cms/internal/entity"
	"github.com/xavierca1/lead-cms/internal/infra/queue"
)

type negotiatingLeads interface {
	GetNegotiating() []entity.Lead
}

type userFinder interface {
	FindByID(id string) (entity.User, bool)
}

type reminderProducer interface {
	PublishReminder(ctx context.Context, payload queue.ReminderPayload) error
}

// ReminderWorker nudges assignees about negotiating leads that went quiet:
// no follow-up inside the stale window means a reminder event.
type ReminderWorker struct {
	leads        negotiatingLeads
	users        userFinder
	producer     reminderProducer
	staleWindow  time.Duration
	tickInterval time.Duration
}

func NewReminderWorker(leads negotiatingLeads, users userFinder, producer reminderProducer) *ReminderWorker {
	return &ReminderWorker{
		leads:        leads,
		users:        users,
		producer:     producer,
		staleWindow:  72 * time.Hour,
		tickInterval: 1 * time.Hour,
	}
}

func (w *ReminderWorker) Start(ctx context.Context) {
	log.Println("🕒 follow-up reminder worker started (72h window)")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.scan(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ follow-up reminder worker stopped")
			return
		case <-ticker.C:
			w.scan(ctx)
		}
	}
}

func (w *ReminderWorker) scan(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-w.staleWindow)
	reminded := 0

	for _, lead := range w.leads.GetNegotiating() {
		if lead.AssignedTo == "" {
			continue
		}

		last := lastFollowUp(lead)
		if last.After(cutoff) {
			continue
		}

		assignee, ok := w.users.FindByID(lead.AssignedTo)
		if !ok {
			// Assignee was deleted; dangling references are tolerated.
			continue
		}

		payload := queue.ReminderPayload{
			LeadID:        lead.ID,
			Company:       lead.Company,
			AssigneeID:    assignee.ID,
			AssigneeEmail: assignee.Email,
			LastFollowUp:  last.Format(time.RFC3339),
		}
		if err := w.producer.PublishReminder(ctx, payload); err != nil {
			log.Printf("❌ failed to queue reminder for lead %s: %v", lead.ID, err)
			continue
		}
		reminded++
	}

	if reminded > 0 {
		log.Printf("✅ queued %d follow-up reminder(s)", reminded)
	}
}

// lastFollowUp falls back to the lead's creation time when the history is
// empty, so fresh negotiation leads still age into a reminder.
func lastFollowUp(lead entity.Lead) time.Time {
	last := lead.CreatedAt
	for _, fu := range lead.FollowUps {
		if fu.Date.After(last) {
			last = fu.Date
		}
	}
	return last
}
