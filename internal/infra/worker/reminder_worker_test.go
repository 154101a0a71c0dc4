package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/lead-cms/internal/entity"
	"github.com/xavierca1/lead-cms/internal/infra/queue"
)

type fakeLeads struct {
	leads []entity.Lead
}

func (f *fakeLeads) GetNegotiating() []entity.Lead { return f.leads }

type fakeUsers map[string]entity.User

func (f fakeUsers) FindByID(id string) (entity.User, bool) {
	user, ok := f[id]
	return user, ok
}

type capturingProducer struct {
	published []queue.ReminderPayload
	err       error
}

func (p *capturingProducer) PublishReminder(ctx context.Context, payload queue.ReminderPayload) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, payload)
	return nil
}

func staleLead(id, assignee string) entity.Lead {
	old := time.Now().UTC().Add(-100 * time.Hour)
	return entity.Lead{
		ID:          id,
		Company:     "Acme Robotics",
		AssignedTo:  assignee,
		Negotiation: true,
		CreatedAt:   old,
		FollowUps: []entity.FollowUp{
			{ID: "f1", Date: old.Add(time.Hour), Action: "Call"},
		},
	}
}

func TestReminderWorker_ScanQueuesStaleLeads(t *testing.T) {
	lead := staleLead("1", "2")
	producer := &capturingProducer{}
	w := NewReminderWorker(
		&fakeLeads{leads: []entity.Lead{lead}},
		fakeUsers{"2": {ID: "2", Email: "engineer@company.com"}},
		producer,
	)

	w.scan(context.Background())

	assert.Len(t, producer.published, 1)
	got := producer.published[0]
	assert.Equal(t, "1", got.LeadID)
	assert.Equal(t, "engineer@company.com", got.AssigneeEmail)
	assert.Equal(t, lead.FollowUps[0].Date.Format(time.RFC3339), got.LastFollowUp)
}

func TestReminderWorker_SkipsFreshUnassignedAndDangling(t *testing.T) {
	fresh := staleLead("1", "2")
	fresh.FollowUps = []entity.FollowUp{{ID: "f2", Date: time.Now().UTC()}}

	unassigned := staleLead("2", "")
	danglingAssignee := staleLead("3", "ghost")

	producer := &capturingProducer{}
	w := NewReminderWorker(
		&fakeLeads{leads: []entity.Lead{fresh, unassigned, danglingAssignee}},
		fakeUsers{"2": {ID: "2", Email: "engineer@company.com"}},
		producer,
	)

	w.scan(context.Background())

	assert.Empty(t, producer.published)
}

// A lead with no follow-ups ages from its creation time.
func TestReminderWorker_FallsBackToCreatedAt(t *testing.T) {
	lead := staleLead("1", "2")
	lead.FollowUps = nil

	producer := &capturingProducer{}
	w := NewReminderWorker(
		&fakeLeads{leads: []entity.Lead{lead}},
		fakeUsers{"2": {ID: "2", Email: "engineer@company.com"}},
		producer,
	)

	w.scan(context.Background())

	assert.Len(t, producer.published, 1)
	assert.Equal(t, lead.CreatedAt.Format(time.RFC3339), producer.published[0].LastFollowUp)
}
