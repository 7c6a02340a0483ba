package store

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "builds.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return s
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestSaveGetList(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	first, err := s.Save(ctx, SavedBuild{Name: "tank", Query: "h=a", CatalogVersion: "v1"})
	require.NoError(t, err)
	assert.Equal(t, "tank", first.Name)
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)

	_, err = s.Save(ctx, SavedBuild{Name: "biped", Query: "h=b", CatalogVersion: "v1", Note: "light"})
	require.NoError(t, err)

	got, err := s.Get(ctx, "biped")
	require.NoError(t, err)
	assert.Equal(t, "light", got.Note)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "biped", list[0].Name)
	assert.Equal(t, "tank", list[1].Name)
}

func TestSaveReplacesByName(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	first, err := s.Save(ctx, SavedBuild{Name: "main", Query: "h=a", CatalogVersion: "v1"})
	require.NoError(t, err)
	second, err := s.Save(ctx, SavedBuild{Name: "main", Query: "h=b", CatalogVersion: "v2"})
	require.NoError(t, err)

	assert.Equal(t, "h=b", second.Query)
	assert.Equal(t, "v2", second.CatalogVersion)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSaveRejectsEmptyName(t *testing.T) {
	_, err := openTemp(t).Save(context.Background(), SavedBuild{Name: " ", Query: "h=a"})
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestGetAndDeleteMissing(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	_, err := s.Get(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "ghost"), ErrNotFound)

	_, err = s.Save(ctx, SavedBuild{Name: "ghost", Query: "h=a"})
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, "ghost"))
	_, err = s.Get(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExportImportJSONL(t *testing.T) {
	ctx := context.Background()
	src := openTemp(t)
	for _, name := range []string{"a", "b", "c"} {
		_, err := src.Save(ctx, SavedBuild{Name: name, Query: "h=" + name, CatalogVersion: "v1"})
		require.NoError(t, err)
	}

	var buf bytes.Buffer
	n, err := src.ExportJSONL(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	dst := openTemp(t)
	n, err = dst.ImportJSONL(ctx, bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	want, err := src.List(ctx)
	require.NoError(t, err)
	got, err := dst.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := range want {
		assert.Equal(t, want[i].Name, got[i].Name)
		assert.Equal(t, want[i].Query, got[i].Query)
		assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt))
	}
}

func TestExportIsLineDelimited(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	_, err := s.Save(ctx, SavedBuild{Name: "one", Query: "h=a"})
	require.NoError(t, err)
	_, err = s.Save(ctx, SavedBuild{Name: "two", Query: "h=b"})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = s.ExportJSONL(ctx, &buf)
	require.NoError(t, err)

	dec, err := zstd.NewReader(nil)
	require.NoError(t, err)
	defer dec.Close()
	plain, err := dec.DecodeAll(buf.Bytes(), nil)
	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimSpace(plain), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), `"name":"one"`)
}

func TestImportRejectsGarbage(t *testing.T) {
	s := openTemp(t)
	_, err := s.ImportJSONL(context.Background(), bytes.NewReader([]byte("not zstd")))
	assert.Error(t, err)
}
