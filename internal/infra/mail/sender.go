package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

const assignmentBody = `<p>Hi %s,</p>
<p>The %s <strong>%s</strong> was assigned to you by %s.</p>
<p>Open the Lead CMS console to review it.</p>`

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendAssignment notifies the assignee that a lead or proposal now belongs
// to them.
func (s *EmailSender) SendAssignment(to string, data AssignmentEmailData) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("New %s assigned: %s", data.EntityKind, data.EntityTitle))
	m.SetBody("text/html", fmt.Sprintf(assignmentBody,
		data.AssigneeName, data.EntityKind, data.EntityTitle, data.AssignedBy))

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send assignment email: %w", err)
	}

	return nil
}
