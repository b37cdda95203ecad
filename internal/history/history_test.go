package history

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStore_RoundTrip needs a reachable PostgreSQL instance; set
// TEST_DATABASE_URL to run it.
func TestStore_RoundTrip(t *testing.T) {
	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	store, err := Connect(ctx, databaseURL)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.EnsureSchema(ctx))

	id, err := store.Record(ctx, "Jane Doe", "employment", "Employment_Letter_Jane_Doe.docx")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	entries, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	var found bool
	for _, e := range entries {
		if e.ID == id {
			found = true
			assert.Equal(t, "Jane Doe", e.EmployeeName)
			assert.Equal(t, "employment", e.TemplateKey)
			assert.Equal(t, "Employment_Letter_Jane_Doe.docx", e.Filename)
			assert.False(t, e.CreatedAt.IsZero())
		}
	}
	assert.True(t, found, "recorded entry should be listed")
}

func TestConnect_BadURL(t *testing.T) {
	_, err := Connect(context.Background(), "not-a-database-url")
	require.Error(t, err)
}
