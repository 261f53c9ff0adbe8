package store

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-bus-schedule/internal/adapter"
	"github.com/MKhiriev/go-bus-schedule/internal/mock"
	"github.com/MKhiriev/go-bus-schedule/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const twoBuses = `{"success":true,"data":[
	{"id":1,"bus_number":"BUS001","license_plate":"ABC123","model":"Mercedes Tourismo","status":"active"},
	{"id":3,"bus_number":"BUS003","license_plate":"GHI789","model":"Scania Interlink","status":"maintenance"}]}`

func TestHTTPBusRepository_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock.NewMockAPIClient(ctrl)
	repo := NewHTTPBusRepository(api)
	ctx := context.Background()

	// The server ignores the filter; the answer is narrowed locally.
	api.EXPECT().Do(ctx, http.MethodGet, "/buses?status=maintenance", nil).Return(twoBuses, nil)

	buses, err := repo.List(ctx, models.BusFilter{Status: "maintenance"})
	require.NoError(t, err)
	require.Len(t, buses, 1)
	assert.Equal(t, "BUS003", buses[0].BusNumber)
}

func TestHTTPBusRepository_ListAllSendsNoQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock.NewMockAPIClient(ctrl)
	api.EXPECT().Do(gomock.Any(), http.MethodGet, "/buses", nil).Return(twoBuses, nil)

	buses, err := NewHTTPBusRepository(api).List(context.Background(), models.BusFilter{Status: models.FilterAll})
	require.NoError(t, err)
	assert.Len(t, buses, 2)
}

func TestHTTPBusRepository_Mutations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock.NewMockAPIClient(ctrl)
	repo := NewHTTPBusRepository(api)
	ctx := context.Background()

	gomock.InOrder(
		api.EXPECT().Do(ctx, http.MethodPost, "/buses", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, body []byte) (string, error) {
				assert.JSONEq(t, `{"id":0,"bus_number":"B9","license_plate":"P9","capacity":20,"status":"active"}`, string(body))
				return `{"success":true,"message":"Bus created successfully","data":{"id":9,"bus_number":"B9"}}`, nil
			}),
		api.EXPECT().Do(ctx, http.MethodPut, "/buses/9", gomock.Any()).
			Return(`{"success":true,"data":{"id":9,"model":"Volvo"}}`, nil),
		api.EXPECT().Do(ctx, http.MethodPatch, "/buses/9/status", []byte(`{"status":"inactive"}`)).
			Return(`{"success":true,"data":{"id":9,"status":"inactive"}}`, nil),
		api.EXPECT().Do(ctx, http.MethodDelete, "/buses/9", nil).
			Return(`{"success":true,"message":"Bus deleted successfully"}`, nil),
	)

	created, err := repo.Create(ctx, models.Bus{BusNumber: "B9", LicensePlate: "P9", Capacity: 20, Status: models.BusStatusActive})
	require.NoError(t, err)
	assert.Equal(t, int64(9), created.ID)

	updated, err := repo.Update(ctx, 9, models.Bus{Model: "Volvo"})
	require.NoError(t, err)
	assert.Equal(t, "Volvo", updated.Model)

	updated, err = repo.UpdateStatus(ctx, 9, models.BusStatusInactive)
	require.NoError(t, err)
	assert.Equal(t, models.BusStatusInactive, updated.Status)

	require.NoError(t, repo.Delete(ctx, 9))
}

func TestHTTPBusRepository_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantMsg string
	}{
		{
			name:    "not found",
			err:     &adapter.APIError{StatusCode: http.StatusNotFound, Body: `{"success":false,"message":"Bus not found"}`},
			wantIs:  ErrNotFound,
			wantMsg: "Bus not found",
		},
		{
			name:   "conflict",
			err:    &adapter.APIError{StatusCode: http.StatusConflict},
			wantIs: ErrAlreadyExists,
		},
		{
			name:   "unauthorized stays an api error",
			err:    &adapter.APIError{StatusCode: http.StatusUnauthorized},
			wantIs: adapter.ErrUnauthorized,
		},
		{
			name:   "transport",
			err:    &adapter.APIError{Err: errors.New("connection refused")},
			wantIs: adapter.ErrTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			api := mock.NewMockAPIClient(ctrl)
			api.EXPECT().Do(gomock.Any(), http.MethodGet, "/buses/4", nil).Return("", tt.err)

			_, err := NewHTTPBusRepository(api).Get(context.Background(), 4)
			require.ErrorIs(t, err, tt.wantIs)

			var apiErr *adapter.APIError
			assert.ErrorAs(t, err, &apiErr, "original error stays in the chain")
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, adapter.UserMessage(err))
			}
		})
	}
}

func TestHTTPRepositories_InvalidIDSkipsNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock.NewMockAPIClient(ctrl)
	ctx := context.Background()

	_, err := NewHTTPBusRepository(api).Get(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.ErrorIs(t, NewHTTPScheduleRepository(api).Delete(ctx, -2), ErrInvalidID)
	_, err = NewHTTPUserRepository(api).Update(ctx, 0, models.User{})
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestHTTPScheduleRepository_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock.NewMockAPIClient(ctrl)
	ctx := context.Background()

	api.EXPECT().
		Do(ctx, http.MethodGet, "/schedules?arrival_location=City+B&departure_date=2024-12-20&departure_location=City+A", nil).
		Return(`{"success":true,"data":[{"id":1,"route":{"from":"City A","to":"City B"},"departure_time":"2024-12-20T08:00:00","status":"scheduled"}]}`, nil)

	schedules, err := NewHTTPScheduleRepository(api).Search(ctx, "City A", "City B", "2024-12-20")
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, "Dec 20, 2024 08:00", schedules[0].FormattedDepartureTime())
}

func TestHTTPScheduleRepository_SearchKeepsMinutePrecision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock.NewMockAPIClient(ctrl)
	ctx := context.Background()

	api.EXPECT().
		Do(ctx, http.MethodGet, "/schedules?arrival_location=City+B&departure_date=2024-12-20&departure_location=City+A", nil).
		Return(`{"success":true,"data":[
			{"id":1,"route":{"from":"City A","to":"City B"},"departure_time":"2024-12-20T08:00","arrival_time":"2024-12-20T10:30","status":"scheduled"},
			{"id":2,"route":{"from":"City A","to":"City B"},"departure_time":"2024-12-21T08:00","status":"scheduled"}]}`, nil)

	schedules, err := NewHTTPScheduleRepository(api).Search(ctx, "City A", "City B", "2024-12-20")
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, int64(1), schedules[0].ID)
	assert.Equal(t, "Dec 20, 2024 08:00", schedules[0].FormattedDepartureTime())
	assert.Equal(t, "Dec 20, 2024 10:30", schedules[0].FormattedArrivalTime())
}

func TestHTTPScheduleRepository_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock.NewMockAPIClient(ctrl)
	repo := NewHTTPScheduleRepository(api)
	ctx := context.Background()

	gomock.InOrder(
		api.EXPECT().Do(ctx, http.MethodPatch, "/schedules/2/status",
			[]byte(`{"status":"delayed","reason":"traffic","delay_minutes":20}`)).
			Return(`{"success":true,"data":{"id":2,"status":"delayed"}}`, nil),
		api.EXPECT().Do(ctx, http.MethodPatch, "/schedules/2/status", []byte(`{"status":"cancelled"}`)).
			Return(`{"success":true,"data":{"id":2,"status":"cancelled"}}`, nil),
	)

	s, err := repo.UpdateStatus(ctx, 2, models.ScheduleStatusUpdate{Status: models.ScheduleStatusDelayed, Reason: "traffic", DelayMinutes: 20})
	require.NoError(t, err)
	assert.Equal(t, models.ScheduleStatusDelayed, s.Status)

	s, err = repo.UpdateStatus(ctx, 2, models.ScheduleStatusUpdate{Status: models.ScheduleStatusCancelled, Reason: "ignored", DelayMinutes: 5})
	require.NoError(t, err)
	assert.Equal(t, models.ScheduleStatusCancelled, s.Status)
}

func TestHTTPUserRepository_Drivers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock.NewMockAPIClient(ctrl)
	api.EXPECT().Do(gomock.Any(), http.MethodGet, "/users/drivers", nil).
		Return(`{"success":true,"data":[{"id":3,"name":"Driver User","role":"driver"}]}`, nil)

	drivers, err := NewHTTPUserRepository(api).Drivers(context.Background())
	require.NoError(t, err)
	require.Len(t, drivers, 1)
	assert.Equal(t, models.RoleDriver, drivers[0].Role)
}

func TestHTTPUserRepository_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock.NewMockAPIClient(ctrl)
	repo := NewHTTPUserRepository(api)
	ctx := context.Background()
	req := models.RegisterRequest{Name: "New", Email: "new@example.com", Password: "secret1", Role: models.RoleDriver}

	t.Run("success", func(t *testing.T) {
		api.EXPECT().Do(ctx, http.MethodPost, "/auth/register", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, body []byte) (string, error) {
				assert.Contains(t, string(body), `"password":"secret1"`)
				return `{"success":true,"message":"User registered successfully","token":"t","user":{"id":7,"name":"New","role":"driver"}}`, nil
			})

		user, err := repo.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		api.EXPECT().Do(ctx, http.MethodPost, "/auth/register", gomock.Any()).Return("", &adapter.APIError{
			StatusCode: http.StatusBadRequest,
			Body:       `{"success":false,"message":"User already exists with this email"}`,
		})

		_, err := repo.Create(ctx, req)
		require.ErrorIs(t, err, adapter.ErrBadRequest)
		assert.Equal(t, "User already exists with this email", adapter.UserMessage(err))
	})
}
