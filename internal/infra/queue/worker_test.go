package queue

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/lead-cms/internal/infra/mail"
)

// MockMailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendAssignment(to string, data mail.AssignmentEmailData) error {
	args := m.Called(to, data)
	return args.Error(0)
}

func assignmentEnvelope(t *testing.T, payload AssignmentPayload) envelope {
	t.Helper()
	raw, err := json.Marshal(payload)
	assert.NoError(t, err)
	return envelope{Type: "assignment", Assignment: raw}
}

func TestWorker_ProcessAssignment(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("SendAssignment", "engineer@company.com", mail.AssignmentEmailData{
		AssigneeName: "Jane Engineer",
		EntityKind:   "lead",
		EntityTitle:  "Acme Robotics",
		AssignedBy:   "John Admin",
	}).Return(nil).Once()

	w := &Worker{Mailer: mailer}
	err := w.process(assignmentEnvelope(t, AssignmentPayload{
		Kind:          KindLead,
		EntityID:      "lead-1",
		EntityTitle:   "Acme Robotics",
		AssigneeName:  "Jane Engineer",
		AssigneeEmail: "engineer@company.com",
		AssignedBy:    "John Admin",
	}))

	assert.NoError(t, err)
	mailer.AssertExpectations(t)
}

func TestWorker_ProcessReminder(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("SendAssignment", "engineer@company.com", mock.MatchedBy(func(d mail.AssignmentEmailData) bool {
		return d.EntityTitle == "Global Manufacturing" && d.EntityKind == "lead follow-up reminder"
	})).Return(nil).Once()

	raw, _ := json.Marshal(ReminderPayload{
		LeadID:        "2",
		Company:       "Global Manufacturing",
		AssigneeEmail: "engineer@company.com",
	})

	w := &Worker{Mailer: mailer}
	err := w.process(envelope{Type: "reminder", Reminder: raw})

	assert.NoError(t, err)
	mailer.AssertExpectations(t)
}

func TestWorker_ProcessPropagatesMailFailure(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("SendAssignment", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	w := &Worker{Mailer: mailer}
	err := w.process(assignmentEnvelope(t, AssignmentPayload{AssigneeEmail: "x@y.z"}))

	assert.Error(t, err)
}

// Unknown event types are acked away, not retried.
func TestWorker_ProcessIgnoresUnknownType(t *testing.T) {
	mailer := new(MockMailer)

	w := &Worker{Mailer: mailer}
	err := w.process(envelope{Type: "party_invite"})

	assert.NoError(t, err)
	mailer.AssertNotCalled(t, "SendAssignment", mock.Anything, mock.Anything)
}
