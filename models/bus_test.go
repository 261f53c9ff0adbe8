package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_AmenitiesString(t *testing.T) {
	tests := []struct {
		name      string
		amenities []string
		want      string
	}{
		{name: "nil", amenities: nil, want: ""},
		{name: "empty", amenities: []string{}, want: ""},
		{name: "single", amenities: []string{"wifi"}, want: "wifi"},
		{name: "many", amenities: []string{"wifi", "ac", "toilet"}, want: "wifi, ac, toilet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bus{Amenities: tt.amenities}.AmenitiesString())
		})
	}
}

func TestBus_SetAmenitiesFromString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "blank clears", input: "   ", want: nil},
		{name: "empty clears", input: "", want: nil},
		{name: "loose spacing", input: "wifi ,ac,  charging_ports", want: []string{"wifi", "ac", "charging_ports"}},
		{name: "surrounding spaces", input: "  wifi, ac  ", want: []string{"wifi", "ac"}},
		{name: "trailing comma", input: "WiFi, AC,", want: []string{"WiFi", "AC"}},
		{name: "empty items inside", input: "WiFi, , AC,,", want: []string{"WiFi", "AC"}},
		{name: "only commas clears", input: " , ,", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Bus{Amenities: []string{"old"}}
			b.SetAmenitiesFromString(tt.input)
			assert.Equal(t, tt.want, b.Amenities)
		})
	}
}

func TestBus_String(t *testing.T) {
	b := Bus{BusNumber: "BUS001", Model: "Volvo 9700", LicensePlate: "ABC123"}
	assert.Equal(t, "BUS001 (Volvo 9700, ABC123)", b.String())
}

func TestNewBus_Defaults(t *testing.T) {
	b := NewBus()
	assert.Equal(t, BusStatusActive, b.Status)
	assert.Equal(t, DefaultBusType, b.Type)
	assert.Equal(t, DefaultBusFuelType, b.FuelType)
}
