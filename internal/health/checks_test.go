package health

import (
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHealthHandler(t *testing.T) {
	cfg := &config.Config{
		Database:     config.Database{Host: "localhost", Port: "5432", User: "u", Password: "p", Name: "catalog", SSLMode: "disable"},
		RedisConnect: config.RedisConnect{Host: "localhost", Port: "6379"},
		Otel:         config.Otel{ServiceName: "storefront"},
	}

	h, err := NewHealthHandler(cfg)

	require.NoError(t, err)
	assert.NotNil(t, h.Handler())
}
