// internal/models/user.go
package models

// UserKind tags the concrete member variant.
type UserKind string

const (
	KindStudent          UserKind = "Student"
	KindLecturer         UserKind = "Lecturer"
	KindTransportOfficer UserKind = "TransportOfficer"
)

// User is the closed set {*Student, *Lecturer, *TransportOfficer}.
type User interface {
	Account() *Profile
	Kind() UserKind
	// RequestTransport records a role-specific summary in the member's history
	// and returns it. Destination and dateTime are taken verbatim.
	RequestTransport(destination, dateTime string) string
	ViewTransportHistory() string
	UpdateProfile(newEmail, newPhone string) bool
	// History returns a copy of the accumulated request summaries, oldest first.
	History() []string

	isUser()
}

// Profile holds the attributes every member shares. The password is kept as
// entered; there is no authentication layer.
type Profile struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

func (p *Profile) Account() *Profile { return p }

// UpdateProfile overwrites email and phone. No format checks are made.
func (p *Profile) UpdateProfile(newEmail, newPhone string) bool {
	p.Email = newEmail
	p.PhoneNumber = newPhone
	return true
}

func copyHistory(h []string) []string {
	out := make([]string, len(h))
	copy(out, h)
	return out
}

var (
	_ User = (*Student)(nil)
	_ User = (*Lecturer)(nil)
	_ User = (*TransportOfficer)(nil)
)
