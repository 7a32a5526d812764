package keyvalue_test

import (
	"context"
	"testing"

	"trade-ledger/core/keyvalue"

	"github.com/stretchr/testify/assert"
)

func TestConnect(t *testing.T) {
	t.Run("Missing Address", func(t *testing.T) {
		rdb, err := keyvalue.Connect(context.Background(), keyvalue.Config{})
		assert.Error(t, err)
		assert.Nil(t, rdb)
	})

	t.Run("Unreachable Server", func(t *testing.T) {
		rdb, err := keyvalue.Connect(context.Background(), keyvalue.Config{
			Addr:           "127.0.0.1:1",
			TimeoutSeconds: 1,
		})
		assert.Error(t, err)
		assert.Nil(t, rdb)
		assert.Contains(t, err.Error(), "redis ping")
	})
}
