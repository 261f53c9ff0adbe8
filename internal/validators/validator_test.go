package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-bus-schedule/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_LoginRequest(t *testing.T) {
	v := NewValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.LoginRequest{Email: "admin@example.com", Password: "x"}))

	err := v.Validate(ctx, models.LoginRequest{Email: "not-an-email"})
	require.ErrorIs(t, err, ErrInvalidInput)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Fields, 2)
	assert.Equal(t, FieldError{Field: "email", Rule: "email", Message: "email must be a valid email"}, ve.Fields[0])
	assert.Equal(t, FieldError{Field: "password", Rule: "required", Message: "password is required"}, ve.Fields[1])
	assert.Equal(t, "email must be a valid email; password is required", err.Error())
}

func TestValidate_RegisterRequest(t *testing.T) {
	v := NewValidator()
	ctx := context.Background()

	valid := models.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret1",
		Role:     models.RoleClient,
	}

	tests := []struct {
		name    string
		mutate  func(r *models.RegisterRequest)
		field   string
		message string
	}{
		{name: "missing name", mutate: func(r *models.RegisterRequest) { r.Name = "" }, field: "name", message: "name is required"},
		{name: "short password", mutate: func(r *models.RegisterRequest) { r.Password = "12345" }, field: "password", message: "password must be at least 6 characters"},
		{name: "unknown role", mutate: func(r *models.RegisterRequest) { r.Role = "superuser" }, field: "role", message: "role must be one of: admin, client, driver"},
		{name: "bad email", mutate: func(r *models.RegisterRequest) { r.Email = "alice" }, field: "email", message: "email must be a valid email"},
	}

	require.NoError(t, v.Validate(ctx, valid))
	require.NoError(t, v.Validate(ctx, &valid))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := v.Validate(ctx, req)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.Len(t, ve.Fields, 1)
			assert.Equal(t, tt.field, ve.Fields[0].Field)
			assert.Equal(t, tt.message, ve.Fields[0].Message)
		})
	}
}

func TestValidate_Bus(t *testing.T) {
	v := NewValidator()
	ctx := context.Background()

	bus := models.NewBus()
	bus.BusNumber = "B100"
	bus.LicensePlate = "XYZ100"
	bus.Capacity = 40
	require.NoError(t, v.Validate(ctx, bus))

	bus.Capacity = 0
	bus.FuelType = "coal"
	err := v.Validate(ctx, bus)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	fields := make([]string, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"capacity", "fuel_type"}, fields)
}

func TestValidate_ScheduleIgnoresEmbeddedCopies(t *testing.T) {
	v := NewValidator()

	schedule := models.Schedule{
		Bus:           &models.Bus{},
		Driver:        &models.User{},
		Route:         models.Route{From: "Downtown", To: "Airport"},
		DepartureTime: "2024-01-15T08:00:00",
		ArrivalTime:   "2024-01-15T09:00:00",
		Status:        models.ScheduleStatusScheduled,
	}
	require.NoError(t, v.Validate(context.Background(), schedule))

	schedule.Route.To = ""
	err := v.Validate(context.Background(), schedule)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "to", ve.Fields[0].Field)
}

func TestValidate_FieldScoping(t *testing.T) {
	v := NewValidator()
	ctx := context.Background()

	req := models.RegisterRequest{Email: "bad", Password: "1"}

	err := v.Validate(ctx, req, "password")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Fields, 1)
	assert.Equal(t, "password", ve.Fields[0].Field)

	assert.NoError(t, v.Validate(ctx, models.RegisterRequest{Name: "n", Email: "a@b.co", Password: "123456", Role: "bogus"}, "email", "password"))
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "just a string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), nil), ErrUnsupportedType)
}
