// internal/models/bus.go
package models

import "fmt"

const busFuelEfficiency = 8.5

// Bus is a route-bound vehicle with seated and standing capacity.
type Bus struct {
	VehicleBase
	RouteNumber      string `json:"route_number"`
	Accessible       bool   `json:"is_accessible"` // wheelchair accessible
	HasWifi          bool   `json:"has_wifi"`
	StandingCapacity int    `json:"standing_capacity"`
}

// NewBus returns an available bus parked at the campus depot.
func NewBus(vehicleID, registrationNumber, model string, capacity int,
	routeNumber string, accessible, hasWifi bool, standingCapacity int) *Bus {
	return &Bus{
		VehicleBase:      newVehicleBase(vehicleID, registrationNumber, model, capacity),
		RouteNumber:      routeNumber,
		Accessible:       accessible,
		HasWifi:          hasWifi,
		StandingCapacity: standingCapacity,
	}
}

func (*Bus) isVehicle() {}

func (*Bus) Kind() VehicleKind { return KindBus }

func (*Bus) VehicleType() string { return string(KindBus) }

func (*Bus) FuelEfficiency() float64 { return busFuelEfficiency }

func (b *Bus) VehicleInfo() string { return b.info(b.VehicleType()) }

func (b *Bus) ScheduleInfo() string {
	return fmt.Sprintf("Bus Schedule Information\n"+
		"Bus ID: %s\n"+
		"Route Number: %s\n"+
		"Status: %s",
		b.VehicleID, b.RouteNumber, b.Status)
}

// TotalCapacity is seated plus standing passengers.
func (b *Bus) TotalCapacity() int {
	return b.Capacity + b.StandingCapacity
}

func (b *Bus) RouteInfo() string {
	accessibility := "Not Accessible"
	if b.Accessible {
		accessibility = "Wheelchair Accessible"
	}
	wifi := "Not Available"
	if b.HasWifi {
		wifi = "Available"
	}
	return fmt.Sprintf("Route Information\n"+
		"Route Number: %s\n"+
		"Bus ID: %s\n"+
		"Total Capacity: %d (Seated: %d, Standing: %d)\n"+
		"Accessibility: %s\n"+
		"WiFi: %s",
		b.RouteNumber, b.VehicleID,
		b.TotalCapacity(), b.Capacity, b.StandingCapacity,
		accessibility, wifi)
}

func (b *Bus) Clone() Vehicle {
	c := *b
	c.VehicleBase = b.VehicleBase.clone()
	return &c
}
