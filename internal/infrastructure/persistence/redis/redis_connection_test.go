package redis

import (
	"context"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/h5sign/internal/config"
)

func TestConnection_Standalone(t *testing.T) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	conn := NewConnection(config.RedisConfig{Mode: "standalone", Host: mr.Host(), Port: port}, nil)
	assert.Nil(t, conn.Client())
	assert.Error(t, conn.Ping(context.Background()))

	require.NoError(t, conn.Connect(context.Background()))
	require.NotNil(t, conn.Client())
	assert.NoError(t, conn.Ping(context.Background()))

	health, err := conn.HealthCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, true, health["connected"])

	require.NoError(t, conn.Close())
	assert.Nil(t, conn.Client())
}

func TestConnection_ConfigErrors(t *testing.T) {
	ctx := context.Background()
	assert.Error(t, NewConnection(config.RedisConfig{Mode: "cluster"}, nil).Connect(ctx))
	assert.Error(t, NewConnection(config.RedisConfig{Mode: "sentinel", SentinelAddrs: []string{"x:1"}}, nil).Connect(ctx))
	assert.Error(t, NewConnection(config.RedisConfig{Mode: "bogus"}, nil).Connect(ctx))
}
