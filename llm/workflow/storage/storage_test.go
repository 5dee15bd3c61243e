package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicKey(t *testing.T) {
	tests := []struct {
		topic string
		want  string
	}{
		{"Dell", "dell"},
		{"dell", "dell"},
		{"Digital Ocean", "digital-ocean"},
		{"  Dell  ", "dell"},
		{"Red Hat OpenShift", "red-hat-openshift"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TopicKey(tt.topic))
	}
}

// runStoreTests exercises the SessionStore contract shared by both backends.
func runStoreTests(t *testing.T, store SessionStore) {
	ctx := context.Background()

	_, err := store.Get(ctx, "Dell")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Put(ctx, &Session{
		SessionID: "generate-report-on-dell",
		Topic:     "Dell",
		Content:   "first report",
	}))

	session, err := store.Get(ctx, "Dell")
	require.NoError(t, err)
	assert.Equal(t, "generate-report-on-dell", session.SessionID)
	assert.Equal(t, "Dell", session.Topic)
	assert.Equal(t, "first report", session.Content)
	assert.False(t, session.CreatedAt.IsZero())
	assert.False(t, session.UpdatedAt.IsZero())

	// topic lookup is case and whitespace insensitive
	session, err = store.Get(ctx, "  dell ")
	require.NoError(t, err)
	assert.Equal(t, "first report", session.Content)

	// overwriting keeps the original creation time
	created := session.CreatedAt
	require.NoError(t, store.Put(ctx, &Session{
		SessionID: "generate-report-on-dell",
		Topic:     "Dell",
		Content:   "second report",
	}))
	session, err = store.Get(ctx, "Dell")
	require.NoError(t, err)
	assert.Equal(t, "second report", session.Content)
	assert.Equal(t, created, session.CreatedAt)

	require.NoError(t, store.Put(ctx, &Session{
		SessionID: "generate-report-on-digital-ocean",
		Topic:     "Digital Ocean",
		Content:   "ocean report",
	}))

	sessions, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)

	require.NoError(t, store.Delete(ctx, "Dell"))
	_, err = store.Get(ctx, "Dell")
	assert.ErrorIs(t, err, ErrNotFound)

	sessions, err = store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
	assert.Equal(t, "Digital Ocean", sessions[0].Topic)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	runStoreTests(t, store)
}

func TestSQLiteStore(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "reports.db")
	store, err := NewSQLiteStore(dbFile, "")
	require.NoError(t, err)
	defer store.Close()
	runStoreTests(t, store)
}

func TestSQLiteStoreReopen(t *testing.T) {
	ctx := context.Background()
	dbFile := filepath.Join(t.TempDir(), "reports.db")

	store, err := NewSQLiteStore(dbFile, "")
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, &Session{
		SessionID: "generate-report-on-dell",
		Topic:     "Dell",
		Content:   "persisted report",
	}))
	require.NoError(t, store.Close())

	store, err = NewSQLiteStore(dbFile, "")
	require.NoError(t, err)
	defer store.Close()

	session, err := store.Get(ctx, "Dell")
	require.NoError(t, err)
	assert.Equal(t, "persisted report", session.Content)
}
