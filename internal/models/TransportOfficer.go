// internal/models/transport_officer.go
package models

import (
	"fmt"
	"strings"
)

// TransportOfficer administers the fleet. Driver assignment and request
// approval only produce summaries; they do not touch stored vehicles.
type TransportOfficer struct {
	Profile
	OfficerID         string   `json:"officer_id"`
	Role              string   `json:"role"`
	Department        string   `json:"department"`
	YearsOfExperience int      `json:"years_of_experience"`
	AssignmentHistory []string `json:"assignment_history"`
}

func NewTransportOfficer(userID, name, email, phoneNumber, password,
	officerID, role, department string, yearsOfExperience int) *TransportOfficer {
	return &TransportOfficer{
		Profile: Profile{
			UserID:      userID,
			Name:        name,
			Email:       email,
			PhoneNumber: phoneNumber,
			Password:    password,
		},
		OfficerID:         officerID,
		Role:              role,
		Department:        department,
		YearsOfExperience: yearsOfExperience,
		AssignmentHistory: []string{},
	}
}

func (*TransportOfficer) isUser() {}

func (*TransportOfficer) Kind() UserKind { return KindTransportOfficer }

func (o *TransportOfficer) RequestTransport(destination, dateTime string) string {
	request := fmt.Sprintf("Administrative Transport Request - Officer: %s, ID: %s\n"+
		"Role: %s, Department: %s\n"+
		"Destination: %s, DateTime: %s\n"+
		"Status: Administrative Priority",
		o.Name, o.OfficerID, o.Role, o.Department,
		destination, dateTime)
	o.AssignmentHistory = append(o.AssignmentHistory, request)
	return request
}

func (o *TransportOfficer) ViewTransportHistory() string {
	if len(o.AssignmentHistory) == 0 {
		return "No transport management history available"
	}
	return fmt.Sprintf("Transport Management History for Officer %s (%s)\n"+
		"Role: %s, Department: %s\n"+
		"History:\n%s",
		o.Name, o.OfficerID, o.Role, o.Department,
		strings.Join(o.AssignmentHistory, "\n"))
}

func (o *TransportOfficer) History() []string { return copyHistory(o.AssignmentHistory) }

// AssignDriverByVehicleType formats a driver assignment for a vehicle type.
func (o *TransportOfficer) AssignDriverByVehicleType(vehicleType string) string {
	return fmt.Sprintf("Driver Assignment by Vehicle Type\n"+
		"Vehicle Type: %s\n"+
		"Assigned by Officer: %s",
		vehicleType, o.Name)
}

// AssignDriverByShift formats a driver assignment for a shift.
func (o *TransportOfficer) AssignDriverByShift(shiftTime string, durationHours int) string {
	return fmt.Sprintf("Driver Assignment by Shift Time\n"+
		"Shift Time: %s\n"+
		"Duration: %d hours\n"+
		"Assigned by Officer: %s",
		shiftTime, durationHours, o.Name)
}

func (o *TransportOfficer) ApproveTransportRequest(requestID string, approve bool) string {
	outcome := "Rejected"
	if approve {
		outcome = "Approved"
	}
	return fmt.Sprintf("Transport Request %s\n"+
		"Request ID: %s\n"+
		"Status: %s\n"+
		"Processed by Officer: %s (%s)",
		outcome, requestID, outcome, o.Name, o.OfficerID)
}

func (o *TransportOfficer) Clone() *TransportOfficer {
	c := *o
	c.AssignmentHistory = copyHistory(o.AssignmentHistory)
	return &c
}
