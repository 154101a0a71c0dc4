package entity

// Actor identifies who is performing a store operation. It is passed
// explicitly instead of read from ambient session state so the domain layer
// never depends on the auth layer.
type Actor struct {
	ID   string
	Name string
	Role Role
}

// DisplayName is stamped into created_by fields of memos and follow-ups.
func (a Actor) DisplayName() string {
	if a.Name == "" {
		return "Unknown"
	}
	return a.Name
}
