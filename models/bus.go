package models

import (
	"fmt"
	"regexp"
	"strings"
)

// BusStatus is the operational state of a bus.
type BusStatus string

const (
	BusStatusActive      BusStatus = "active"
	BusStatusMaintenance BusStatus = "maintenance"
	BusStatusInactive    BusStatus = "inactive"
)

// BusStatuses lists every known bus status in display order.
var BusStatuses = []BusStatus{BusStatusActive, BusStatusMaintenance, BusStatusInactive}

// Default values applied to a freshly created bus.
const (
	DefaultBusType     = "Standard"
	DefaultBusFuelType = "diesel"
)

var amenitiesSeparator = regexp.MustCompile(`\s*,\s*`)

// Bus is a vehicle of the fleet.
//
// DriverName is a denormalized copy of the assigned driver's name; no
// referential integrity to [User] is enforced on the client.
type Bus struct {
	ID           int64     `json:"id"`
	BusNumber    string    `json:"bus_number" validate:"required"`
	LicensePlate string    `json:"license_plate" validate:"required"`
	Model        string    `json:"model,omitempty"`
	Capacity     int       `json:"capacity" validate:"gte=1"`
	Type         string    `json:"type,omitempty"`
	FuelType     string    `json:"fuel_type,omitempty" validate:"omitempty,oneof=diesel petrol electric hybrid"`
	Year         int       `json:"year,omitempty"`
	Status       BusStatus `json:"status" validate:"required,oneof=active maintenance inactive"`
	Amenities    []string  `json:"amenities,omitempty"`
	DriverName   string    `json:"driver_name,omitempty"`
}

// NewBus returns a bus with the defaults used by the creation form.
func NewBus() Bus {
	return Bus{Status: BusStatusActive, Type: DefaultBusType, FuelType: DefaultBusFuelType}
}

// String returns "<number> (<model>, <plate>)".
func (b Bus) String() string {
	return fmt.Sprintf("%s (%s, %s)", b.BusNumber, b.Model, b.LicensePlate)
}

// AmenitiesString joins the amenities with ", ". It returns "" when there
// are none.
func (b Bus) AmenitiesString() string {
	if len(b.Amenities) == 0 {
		return ""
	}
	return strings.Join(b.Amenities, ", ")
}

// SetAmenitiesFromString replaces the amenities with the comma-separated
// items of s. Empty items are dropped; blank input clears the list.
func (b *Bus) SetAmenitiesFromString(s string) {
	var amenities []string
	for _, item := range amenitiesSeparator.Split(strings.TrimSpace(s), -1) {
		if item != "" {
			amenities = append(amenities, item)
		}
	}
	b.Amenities = amenities
}
