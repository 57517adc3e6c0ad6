package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsletter/internal/platform/config"
	"newsletter/internal/subscriptions/store/subscriber"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenStoreWithoutDatabaseURL(t *testing.T) {
	tx, db, err := openStore(context.Background(), config.Database{}, discardLogger())
	require.NoError(t, err)
	assert.Nil(t, db)
	assert.IsType(t, &subscriber.InMemory{}, tx)
}

func TestNewEmailClient(t *testing.T) {
	t.Run("no api key falls back to the logging sender", func(t *testing.T) {
		client, err := newEmailClient(config.Email{Sender: "newsletter@example.com", Timeout: time.Second}, discardLogger())
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("empty sender is rejected", func(t *testing.T) {
		_, err := newEmailClient(config.Email{ResendAPIKey: "re_key", Timeout: time.Second}, discardLogger())
		assert.Error(t, err)
	})
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	err := run(context.Background(), config.Config{Server: config.Server{BaseURL: "not a url"}}, discardLogger())
	assert.Error(t, err)
}
