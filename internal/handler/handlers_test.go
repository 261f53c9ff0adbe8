package handler

import (
	"testing"

	"github.com/MKhiriev/go-bus-schedule/internal/config"
	"github.com/MKhiriev/go-bus-schedule/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers_HTTPAddress(t *testing.T) {
	handlers, err := NewHandlers(nil, config.Server{HTTPAddress: ":3000"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, handlers)
	assert.NotNil(t, handlers.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	handlers, err := NewHandlers(nil, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoListenAddress)
	assert.Nil(t, handlers)
}
