// internal/models/van.go
package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

const vanFuelEfficiency = 10.5

// Van is a small vehicle used for staff transport, cargo or special needs.
type Van struct {
	VehicleBase
	HasCargoSpace  bool    `json:"has_cargo_space"`
	CargoCapacity  float64 `json:"cargo_capacity"` // cubic metres
	PurposeType    string  `json:"purpose_type"`   // e.g. "Staff Transport", "Cargo", "Special Needs"
	HasFirstAidKit bool    `json:"has_first_aid_kit"`
}

// NewVan returns an available van parked at the campus depot.
func NewVan(vehicleID, registrationNumber, model string, capacity int,
	hasCargoSpace bool, cargoCapacity float64, purposeType string, hasFirstAidKit bool) *Van {
	return &Van{
		VehicleBase:    newVehicleBase(vehicleID, registrationNumber, model, capacity),
		HasCargoSpace:  hasCargoSpace,
		CargoCapacity:  cargoCapacity,
		PurposeType:    purposeType,
		HasFirstAidKit: hasFirstAidKit,
	}
}

func (*Van) isVehicle() {}

func (*Van) Kind() VehicleKind { return KindVan }

func (*Van) VehicleType() string { return string(KindVan) }

func (*Van) FuelEfficiency() float64 { return vanFuelEfficiency }

func (v *Van) VehicleInfo() string { return v.info(v.VehicleType()) }

func (v *Van) ScheduleInfo() string {
	return fmt.Sprintf("Van Schedule Information\n"+
		"Van ID: %s\n"+
		"Purpose Type: %s\n"+
		"Status: %s",
		v.VehicleID, v.PurposeType, v.Status)
}

// CheckCargoCapacity reports whether the van has cargo space of at least required.
func (v *Van) CheckCargoCapacity(required float64) bool {
	return v.HasCargoSpace && v.CargoCapacity >= required
}

func (v *Van) CargoInformation() string {
	return fmt.Sprintf("Van Cargo Information:\n"+
		"Cargo Capacity: %g cubic metres\n"+
		"Purpose: %s\n"+
		"Current Location: %s\n"+
		"Status: %s",
		v.CargoCapacity, v.PurposeType, v.Location, v.Status)
}

func (v *Van) Clone() Vehicle {
	c := *v
	c.VehicleBase = v.VehicleBase.clone()
	return &c
}

// vanFields has Van's fields without its JSON methods.
type vanFields Van

// MarshalJSON writes a non-finite cargo capacity as "NaN", "+Inf" or "-Inf",
// which plain JSON numbers cannot hold.
func (v *Van) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		*vanFields
		CargoCapacity cubicMetres `json:"cargo_capacity"`
	}{(*vanFields)(v), cubicMetres(v.CargoCapacity)})
}

func (v *Van) UnmarshalJSON(data []byte) error {
	aux := struct {
		*vanFields
		CargoCapacity cubicMetres `json:"cargo_capacity"`
	}{(*vanFields)(v), cubicMetres(v.CargoCapacity)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	v.CargoCapacity = float64(aux.CargoCapacity)
	return nil
}

type cubicMetres float64

func (c cubicMetres) MarshalJSON() ([]byte, error) {
	f := float64(c)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return json.Marshal(strconv.FormatFloat(f, 'g', -1, 64))
	}
	return json.Marshal(f)
}

func (c *cubicMetres) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("cargo capacity: %w", err)
		}
		*c = cubicMetres(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*c = cubicMetres(f)
	return nil
}
