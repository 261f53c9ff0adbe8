package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-bus-schedule/internal/logger"
	"github.com/MKhiriev/go-bus-schedule/internal/mock"
	"github.com/MKhiriev/go-bus-schedule/internal/service"
	"github.com/MKhiriev/go-bus-schedule/internal/session"
	"github.com/MKhiriev/go-bus-schedule/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type uiFunc func(ctx context.Context) error

func (f uiFunc) Run(ctx context.Context) error { return f(ctx) }

func TestNewApp_NoUI(t *testing.T) {
	app, err := NewApp(&service.ClientServices{}, nil, logger.Nop())

	assert.Nil(t, app)
	assert.ErrorIs(t, err, errNoUI)
}

func TestApp_Run(t *testing.T) {
	uiErr := errors.New("terminal is gone")

	tests := []struct {
		name    string
		uiErr   error
		wantErr error
	}{
		{name: "ui returns normally", uiErr: nil},
		{name: "user quit", uiErr: tui.ErrUserQuit},
		{name: "interrupted", uiErr: context.Canceled},
		{name: "ui failure", uiErr: uiErr, wantErr: uiErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mock.NewMockClientAuthService(ctrl)
			auth.EXPECT().Logout().Times(1)

			services := &service.ClientServices{Session: session.NewStore(), Auth: auth}
			app, err := NewApp(services, uiFunc(func(context.Context) error { return tt.uiErr }), logger.Nop())
			require.NoError(t, err)

			err = app.Run(context.Background())
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApp_Run_PassesContextToUI(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	auth.EXPECT().Logout()

	ctx, cancel := context.WithCancel(context.Background())
	services := &service.ClientServices{Session: session.NewStore(), Auth: auth}
	app, err := NewApp(services, uiFunc(func(ctx context.Context) error {
		cancel()
		<-ctx.Done()
		return ctx.Err()
	}), logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, app.Run(ctx))
}
