package mail

type AssignmentEmailData struct {
	AssigneeName string
	EntityKind   string
	EntityTitle  string
	AssignedBy   string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
