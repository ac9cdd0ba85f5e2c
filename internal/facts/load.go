package facts

import (
	"context"
	"path/filepath"
	"strings"
)

// Load opens the fact source at path, choosing the format by extension.
// An empty path selects the builtin set.
func Load(ctx context.Context, path string) (*Set, error) {
	if path == "" {
		return Builtin()
	}
	if IsSQLitePath(path) {
		return OpenSQLite(ctx, path)
	}
	return LoadFile(path)
}

// Save writes src to path in the format implied by its extension.
func Save(ctx context.Context, path string, src Source) error {
	if IsSQLitePath(path) {
		return WriteSQLite(ctx, path, src)
	}
	return WriteFile(path, src)
}

// IsSQLitePath reports whether path names a SQLite database.
func IsSQLitePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	default:
		return false
	}
}
