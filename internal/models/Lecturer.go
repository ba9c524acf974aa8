// internal/models/lecturer.go
package models

import (
	"fmt"
	"strings"
)

// Lecturer requests are labelled as priority. The label is text only;
// nothing downstream ranks requests.
type Lecturer struct {
	Profile
	StaffID          string   `json:"staff_id"`
	Department       string   `json:"department"`
	Designation      string   `json:"designation"`
	Permanent        bool     `json:"is_permanent"`
	TransportHistory []string `json:"transport_history"`
}

func NewLecturer(userID, name, email, phoneNumber, password,
	staffID, department, designation string, permanent bool) *Lecturer {
	return &Lecturer{
		Profile: Profile{
			UserID:      userID,
			Name:        name,
			Email:       email,
			PhoneNumber: phoneNumber,
			Password:    password,
		},
		StaffID:          staffID,
		Department:       department,
		Designation:      designation,
		Permanent:        permanent,
		TransportHistory: []string{},
	}
}

func (*Lecturer) isUser() {}

func (*Lecturer) Kind() UserKind { return KindLecturer }

func (l *Lecturer) RequestTransport(destination, dateTime string) string {
	request := fmt.Sprintf("Lecturer Transport Request - Staff: %s, ID: %s\n"+
		"Department: %s, Designation: %s\n"+
		"Destination: %s, DateTime: %s\n"+
		"Status: Priority Request - Processing",
		l.Name, l.StaffID, l.Department, l.Designation,
		destination, dateTime)
	l.TransportHistory = append(l.TransportHistory, request)
	return request
}

func (l *Lecturer) ViewTransportHistory() string {
	if len(l.TransportHistory) == 0 {
		return fmt.Sprintf("No transport history available for Lecturer %s (%s)", l.Name, l.StaffID)
	}
	return fmt.Sprintf("Transport History for Lecturer %s (%s):\n%s",
		l.Name, l.StaffID, strings.Join(l.TransportHistory, "\n"))
}

func (l *Lecturer) History() []string { return copyHistory(l.TransportHistory) }

// RequestSpecialTransport formats a group request. It is not added to the history.
func (l *Lecturer) RequestSpecialTransport(purpose string, passengers int) string {
	return fmt.Sprintf("Special Transport Request\n"+
		"Lecturer: %s (%s)\n"+
		"Purpose: %s\n"+
		"Number of Passengers: %d\n"+
		"Status: Under Review",
		l.Name, l.StaffID, purpose, passengers)
}

func (l *Lecturer) Clone() *Lecturer {
	c := *l
	c.TransportHistory = copyHistory(l.TransportHistory)
	return &c
}
