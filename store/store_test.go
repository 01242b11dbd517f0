package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStores returns one instance of every Store implementation.
func newStores(t *testing.T) map[string]Store {
	t.Helper()

	sqliteMem, err := NewSQLite(":memory:")
	require.NoError(t, err)

	sqliteFile, err := NewSQLite(filepath.Join(t.TempDir(), "hasilbumi.db"))
	require.NoError(t, err)

	file, err := NewFile(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	stores := map[string]Store{
		"memory":        NewMemory(),
		"file":          file,
		"sqlite-memory": sqliteMem,
		"sqlite-file":   sqliteFile,
		"redis":         NewRedisClient(client, "test:"),
	}
	t.Cleanup(func() {
		for _, s := range stores {
			s.Close()
		}
	})
	return stores
}

func TestStore(t *testing.T) {
	ctx := context.Background()
	for name, s := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get(ctx, "items.json")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, s.Put(ctx, "items.json", []byte(`["LADA"]`)))
			got, err := s.Get(ctx, "items.json")
			require.NoError(t, err)
			assert.Equal(t, `["LADA"]`, string(got))

			// Put replaces the whole value.
			require.NoError(t, s.Put(ctx, "items.json", []byte(`["KOPI"]`)))
			got, err = s.Get(ctx, "items.json")
			require.NoError(t, err)
			assert.Equal(t, `["KOPI"]`, string(got))

			// keys are independent.
			require.NoError(t, s.Put(ctx, "transactions.jsonl", []byte("")))
			got, err = s.Get(ctx, "transactions.jsonl")
			require.NoError(t, err)
			assert.Empty(t, got)

			require.NoError(t, s.Delete(ctx, "items.json"))
			_, err = s.Get(ctx, "items.json")
			assert.ErrorIs(t, err, ErrNotFound)

			// deleting twice is fine.
			assert.NoError(t, s.Delete(ctx, "items.json"))
		})
	}
}

func TestRedisPrefix(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	s := NewRedisClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "hasilbumi:")
	defer s.Close()

	require.NoError(t, s.Put(ctx, "items.json", []byte(`[]`)))
	assert.True(t, mr.Exists("hasilbumi:items.json"))
}

func TestSQLitePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "hasilbumi.db")

	s, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, "items.json", []byte(`["LADA"]`)))
	require.NoError(t, s.Close())

	s, err = NewSQLite(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get(ctx, "items.json")
	require.NoError(t, err)
	assert.Equal(t, `["LADA"]`, string(got))
}

func TestFileInvalidKey(t *testing.T) {
	s, err := NewFile(t.TempDir())
	require.NoError(t, err)
	for _, key := range []string{"", "..", "a/b", `a\b`} {
		assert.Error(t, s.Put(context.Background(), key, nil), "key %q", key)
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	testCases := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"file", Options{Kind: KindFile, Path: t.TempDir()}, false},
		{"default is file", Options{Path: t.TempDir()}, false},
		{"sqlite", Options{Kind: KindSQLite, Path: filepath.Join(t.TempDir(), "x.db")}, false},
		{"redis", Options{Kind: KindRedis, RedisAddr: mr.Addr()}, false},
		{"memory", Options{Kind: KindMemory}, false},
		{"unknown", Options{Kind: "postgres"}, true},
		{"file without path", Options{Kind: KindFile}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Open(ctx, tc.opts)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, s.Close())
		})
	}
}

func TestCopy(t *testing.T) {
	ctx := context.Background()
	stores := newStores(t)
	src, dst := stores["sqlite-memory"], stores["redis"]

	require.NoError(t, src.Put(ctx, "items.json", []byte(`["LADA"]`)))
	require.NoError(t, dst.Put(ctx, "transactions.jsonl", []byte("stale\n")))

	n, err := Copy(ctx, dst, src, "items.json", "transactions.jsonl")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := dst.Get(ctx, "items.json")
	require.NoError(t, err)
	assert.Equal(t, `["LADA"]`, string(got))

	// missing in src, so removed from dst.
	_, err = dst.Get(ctx, "transactions.jsonl")
	assert.ErrorIs(t, err, ErrNotFound)
}
