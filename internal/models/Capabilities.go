// internal/models/capabilities.go
package models

// Trackable is implemented by anything whose position and status can be followed.
type Trackable interface {
	// UpdateLocation stores the coordinates as a "lat, lon" string with six decimals.
	UpdateLocation(latitude, longitude float64)
	CurrentLocation() string
	UpdateStatus(status Status)
	CurrentStatus() Status
}

// Serviceable is implemented by anything that keeps a maintenance record.
type Serviceable interface {
	IsServiceDue() bool
	RecordService(serviceType, serviceDate string)
	// LastServiceDate reports false when no service was ever recorded.
	LastServiceDate() (string, bool)
}

// Schedulable is implemented by anything that can be booked for a time slot.
type Schedulable interface {
	IsAvailable(dateTime string) bool
	Schedule(dateTime string, durationHours int, purpose string) bool
	CancelSchedule(scheduleID string) bool
	ScheduleInfo() string
}
