package authors

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mrlokans/catalog/internal/config"
	"github.com/mrlokans/catalog/internal/database"
)

func TestRepository_ListAuthors(t *testing.T) {
	db, err := database.NewDatabase(config.Database{
		Path:     filepath.Join(t.TempDir(), "authors.db"),
		LogLevel: "silent",
	}, zap.NewNop())
	require.NoError(t, err)
	defer db.Close()

	authors, err := NewRepository(db.DB).ListAuthors(context.Background())

	require.NoError(t, err)
	require.Len(t, authors, 4)
	assert.Equal(t, uint(1), authors[0].ID)
	assert.Equal(t, "George Orwell", authors[0].Name)
	assert.Equal(t, "Harper Lee", authors[3].Name)
}
