package migrations

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingExecer struct {
	queries []string
	err     error
}

func (r *recordingExecer) ExecContext(_ context.Context, query string, _ ...any) (sql.Result, error) {
	r.queries = append(r.queries, query)
	return nil, r.err
}

func TestApply(t *testing.T) {
	t.Run("runs every migration in order", func(t *testing.T) {
		exec := &recordingExecer{}
		require.NoError(t, Apply(context.Background(), exec))

		require.Len(t, exec.queries, len(Names()))
		assert.Contains(t, exec.queries[0], "CREATE TABLE IF NOT EXISTS subscribers")
		assert.Contains(t, exec.queries[0], "subscription_tokens")
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		exec := &recordingExecer{err: errors.New("permission denied")}
		err := Apply(context.Background(), exec)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "0001_create_subscriptions.sql")
		assert.Len(t, exec.queries, 1)
	})
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"0001_create_subscriptions.sql"}, Names())
}
