package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-bus-schedule/internal/mock"
	"github.com/MKhiriev/go-bus-schedule/internal/store"
	"github.com/MKhiriev/go-bus-schedule/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDashboardService_Stats(t *testing.T) {
	memory, err := store.NewSeededMemory(context.Background())
	require.NoError(t, err)

	svc := NewDashboardService(memory.Users, memory.Buses, memory.Schedules, memory.Activities).(*dashboardService)
	svc.now = func() time.Time { return time.Date(2024, 12, 20, 12, 0, 0, 0, time.Local) }

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DashboardTotals{Users: 3, Buses: 3, Schedules: 2, ActiveSchedules: 2, TodaysTrips: 2}, stats.Totals)

	svc.now = func() time.Time { return time.Date(2024, 12, 21, 12, 0, 0, 0, time.Local) }
	stats, err = svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Totals.TodaysTrips)
}

func TestDashboardService_Stats_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock.NewMockUserRepository(ctrl)
	boom := errors.New("boom")
	users.EXPECT().List(gomock.Any(), models.UserFilter{}).Return(nil, boom)

	svc := NewDashboardService(users, store.NewMemoryBusRepository(), store.NewMemoryScheduleRepository(), store.NewMemoryActivityRepository(0))
	_, err := svc.Stats(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestDashboardService_Activities(t *testing.T) {
	ctx := context.Background()
	activities := store.NewMemoryActivityRepository(0)
	for i := range DefaultActivitiesLimit + 5 {
		require.NoError(t, activities.Record(ctx, models.Activity{Activity: fmt.Sprintf("a%d", i)}))
	}

	svc := NewDashboardService(store.NewMemoryUserRepository(), store.NewMemoryBusRepository(), store.NewMemoryScheduleRepository(), activities)

	all, err := svc.Activities(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, DefaultActivitiesLimit)

	two, err := svc.Activities(ctx, 2)
	require.NoError(t, err)
	require.Len(t, two, 2)
	assert.Equal(t, fmt.Sprintf("a%d", DefaultActivitiesLimit+4), two[0].Activity)
}
