// internal/models/vehicle.go
package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	logrus "github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom"
)

// Status is the textual vehicle status. Only the constants below are
// produced here, but any string is stored as given.
type Status string

const (
	StatusAvailable Status = "Available"
	StatusScheduled Status = "Scheduled"
	StatusServiced  Status = "Serviced"
)

// Known reports whether s is one of the statuses the fleet logic produces.
func (s Status) Known() bool {
	switch s {
	case StatusAvailable, StatusScheduled, StatusServiced:
		return true
	}
	return false
}

// DefaultLocation is where every vehicle starts.
const DefaultLocation = "Campus Depot"

// SRID used for location points (WGS 84).
const SRID = 4326

// VehicleKind tags the concrete vehicle variant.
type VehicleKind string

const (
	KindBus VehicleKind = "Bus"
	KindVan VehicleKind = "Van"
)

// Vehicle is the closed set {*Bus, *Van}.
type Vehicle interface {
	Trackable
	Serviceable
	Schedulable

	Base() *VehicleBase
	Kind() VehicleKind
	VehicleType() string
	// FuelEfficiency is in km/L.
	FuelEfficiency() float64
	VehicleInfo() string
	Clone() Vehicle

	isVehicle()
}

var (
	_ Vehicle = (*Bus)(nil)
	_ Vehicle = (*Van)(nil)
)

// VehicleBase holds the attributes every vehicle shares.
type VehicleBase struct {
	VehicleID          string  `json:"vehicle_id"`
	RegistrationNumber string  `json:"registration_number"`
	Model              string  `json:"model"`
	Capacity           int     `json:"capacity"`
	Location           string  `json:"current_location"`
	Status             Status  `json:"status"`
	LastServiced       *string `json:"last_service_date,omitempty"`
}

func newVehicleBase(vehicleID, registrationNumber, model string, capacity int) VehicleBase {
	return VehicleBase{
		VehicleID:          vehicleID,
		RegistrationNumber: registrationNumber,
		Model:              model,
		Capacity:           capacity,
		Location:           DefaultLocation,
		Status:             StatusAvailable,
	}
}

func (v *VehicleBase) Base() *VehicleBase { return v }

func (v *VehicleBase) UpdateLocation(latitude, longitude float64) {
	v.Location = fmt.Sprintf("%.6f, %.6f", latitude, longitude)
}

func (v *VehicleBase) CurrentLocation() string { return v.Location }

func (v *VehicleBase) UpdateStatus(status Status) {
	if !status.Known() {
		logrus.WithFields(logrus.Fields{
			"vehicle_id": v.VehicleID,
			"status":     string(status),
		}).Warn("Vehicle status outside the known set; storing as given")
	}
	v.Status = status
}

func (v *VehicleBase) CurrentStatus() Status { return v.Status }

// LocationPoint parses the current location back into a point. It returns
// false when the location is a named place rather than coordinates.
func (v *VehicleBase) LocationPoint() (*geom.Point, bool) {
	lat, lon, ok := parseCoordinates(v.Location)
	if !ok {
		return nil, false
	}
	return geom.NewPointFlat(geom.XY, []float64{lon, lat}).SetSRID(SRID), true
}

// IsServiceDue is true until the first service is recorded. There is no
// interval or mileage check.
func (v *VehicleBase) IsServiceDue() bool {
	return v.LastServiced == nil
}

func (v *VehicleBase) RecordService(serviceType, serviceDate string) {
	date := serviceDate
	v.LastServiced = &date
	v.Status = StatusServiced
}

func (v *VehicleBase) LastServiceDate() (string, bool) {
	if v.LastServiced == nil {
		return "", false
	}
	return *v.LastServiced, true
}

// IsAvailable ignores dateTime: there is no timetable, only the status.
func (v *VehicleBase) IsAvailable(dateTime string) bool {
	return v.Status == StatusAvailable
}

func (v *VehicleBase) Schedule(dateTime string, durationHours int, purpose string) bool {
	if !v.IsAvailable(dateTime) {
		return false
	}
	v.UpdateStatus(StatusScheduled)
	return true
}

// CancelSchedule always releases the vehicle. No schedule registry exists,
// so scheduleID is not checked.
func (v *VehicleBase) CancelSchedule(scheduleID string) bool {
	v.UpdateStatus(StatusAvailable)
	return true
}

func (v *VehicleBase) info(vehicleType string) string {
	return fmt.Sprintf("Vehicle ID: %s\n"+
		"Type: %s\n"+
		"Registration: %s\n"+
		"Model: %s\n"+
		"Capacity: %d passengers\n"+
		"Status: %s\n"+
		"Current Location: %s",
		v.VehicleID, vehicleType, v.RegistrationNumber,
		v.Model, v.Capacity, v.Status, v.Location)
}

func (v *VehicleBase) clone() VehicleBase {
	c := *v
	if v.LastServiced != nil {
		date := *v.LastServiced
		c.LastServiced = &date
	}
	return c
}

func parseCoordinates(s string) (lat, lon float64, ok bool) {
	latStr, lonStr, found := strings.Cut(s, ",")
	if !found {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return 0, 0, false
	}
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return 0, 0, false
	}
	return lat, lon, true
}
