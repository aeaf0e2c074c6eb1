package storage

import (
	"context"
	"testing"
	"time"

	"github.com/rocketscienceinc/rainet-engine/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Connects to a running redis", func(t *testing.T) {
		ctx, st := suite.New(t)

		client, err := New(ctx, st.RedisAddr)

		require.NoError(t, err)
		assert.NoError(t, client.Close())
	})

	t.Run("Fails when nothing listens", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		_, err := New(ctx, "127.0.0.1:1")

		assert.Error(t, err)
	})
}
