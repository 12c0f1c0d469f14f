package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRedis(t *testing.T) {
	t.Run("Host Port Address", func(t *testing.T) {
		mr := miniredis.RunT(t)

		InitRedis(mr.Addr())
		rdb := GetClient()
		require.NotNil(t, rdb)
		assert.NoError(t, rdb.Ping(context.Background()).Err())
	})

	t.Run("URL Address", func(t *testing.T) {
		mr := miniredis.RunT(t)

		InitRedis("redis://" + mr.Addr())
		require.NotNil(t, GetClient())
	})

	t.Run("Invalid URL Leaves Client Nil", func(t *testing.T) {
		InitRedis("redis://invalid:port:extra")
		assert.Nil(t, GetClient())
	})

	t.Run("Unreachable Server Leaves Client Nil", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		InitRedis(addr)
		assert.Nil(t, GetClient())
	})
}
