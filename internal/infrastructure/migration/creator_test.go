package migration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/doorshop/backend/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSlug(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"add rankings index", "add_rankings_index"},
		{"Add-Post-Likes", "add_post_likes"},
		{"__double__underscore__", "double_underscore"},
		{"special!@#chars 2", "special_chars_2"},
		{"кириллица only", "only"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, fileSlug(tt.input))
		})
	}
}

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 3, 10, 8, 30, 15, 0, time.UTC)

	mf, err := CreateMigration(dir, "add rankings index", now)
	require.NoError(t, err)
	assert.Equal(t, "20260310083015", mf.Version)
	assert.Equal(t, filepath.Join(dir, "20260310083015_add_rankings_index.up.sql"), mf.UpPath)
	assert.FileExists(t, mf.DownPath)

	content, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "add_rankings_index")

	t.Run("does not overwrite", func(t *testing.T) {
		_, err := CreateMigration(dir, "add rankings index", now)
		assert.Error(t, err)
	})

	t.Run("rejects empty names", func(t *testing.T) {
		_, err := CreateMigration(dir, "!!!", now)
		assert.Error(t, err)
	})
}

func TestListMigrations(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		names, err := ListMigrations(filepath.Join(t.TempDir(), "nope"))
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("sorted up files only", func(t *testing.T) {
		dir := t.TempDir()
		for _, f := range []string{"2_b.up.sql", "2_b.down.sql", "1_a.up.sql", "1_a.down.sql", "notes.txt"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, f), nil, 0o644))
		}
		names, err := ListMigrations(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"1_a", "2_b"}, names)
	})
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := migrations.FS.ReadDir(".")
	require.NoError(t, err)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case filepath.Ext(name) != ".sql":
		case len(name) > 7 && name[len(name)-7:] == ".up.sql":
			ups[name[:len(name)-7]] = true
		case len(name) > 9 && name[len(name)-9:] == ".down.sql":
			downs[name[:len(name)-9]] = true
		}
	}
	require.NotEmpty(t, ups)
	assert.Equal(t, ups, downs)
}
