package facts

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRoundTripKeepsVocabularyOrder(t *testing.T) {
	ctx := context.Background()
	src, err := New("test", []Fact{
		{Subject: "Hoboken", Category: "Hudson"},
		{Subject: "Avalon", Category: "Cape May"},
	}, []string{"Atlantic", "Cape May", "Hudson"})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "facts.db")
	require.NoError(t, Save(ctx, path, src))

	loaded, err := Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, path, loaded.Name())
	assert.Equal(t, src.All(), loaded.All())
	assert.Equal(t, []string{"Atlantic", "Cape May", "Hudson"}, loaded.Vocabulary())

	// Saving again replaces the previous contents.
	smaller, err := New("smaller", []Fact{{Subject: "Newark", Category: "Essex"}}, nil)
	require.NoError(t, err)
	require.NoError(t, WriteSQLite(ctx, path, smaller))
	loaded, err = OpenSQLite(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, []Fact{{Subject: "Newark", Category: "Essex"}}, loaded.All())
}

func TestOpenSQLiteWithoutCategoriesTable(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "plain.sqlite")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	for _, stmt := range []string{
		`CREATE TABLE facts (subject TEXT NOT NULL, category TEXT NOT NULL);`,
		`INSERT INTO facts VALUES ('Salem', 'Salem'), ('Elmer', 'Salem'), ('Newton', 'Sussex');`,
	} {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	set, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len())
	assert.Equal(t, []string{"Salem", "Sussex"}, set.Vocabulary())
}

func TestOpenSQLiteEmptyFacts(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE facts (subject TEXT NOT NULL, category TEXT NOT NULL);`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = OpenSQLite(ctx, path)
	require.ErrorIs(t, err, ErrNoFacts)
}

func TestOpenSQLiteMissing(t *testing.T) {
	_, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "missing.db"))
	require.Error(t, err)
}
