// internal/models/student.go
package models

import (
	"fmt"
	"strings"
)

type Student struct {
	Profile
	StudentID        string   `json:"student_id"`
	Course           string   `json:"course"`
	Year             int      `json:"year"`
	TransportHistory []string `json:"transport_history"`
}

func NewStudent(userID, name, email, phoneNumber, password,
	studentID, course string, year int) *Student {
	return &Student{
		Profile: Profile{
			UserID:      userID,
			Name:        name,
			Email:       email,
			PhoneNumber: phoneNumber,
			Password:    password,
		},
		StudentID:        studentID,
		Course:           course,
		Year:             year,
		TransportHistory: []string{},
	}
}

func (*Student) isUser() {}

func (*Student) Kind() UserKind { return KindStudent }

func (s *Student) RequestTransport(destination, dateTime string) string {
	request := fmt.Sprintf("Transport request to %s at %s", destination, dateTime)
	s.TransportHistory = append(s.TransportHistory, request)
	return request
}

func (s *Student) ViewTransportHistory() string {
	if len(s.TransportHistory) == 0 {
		return "No transport history available"
	}
	return strings.Join(s.TransportHistory, "\n")
}

func (s *Student) History() []string { return copyHistory(s.TransportHistory) }

func (s *Student) CheckShuttleSchedule(route string) string {
	return fmt.Sprintf("Shuttle Schedule for Route %s\n"+
		"Available for student use with valid student ID: %s",
		route, s.StudentID)
}

func (s *Student) Clone() *Student {
	c := *s
	c.TransportHistory = copyHistory(s.TransportHistory)
	return &c
}
