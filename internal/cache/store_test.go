package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func testStores(t *testing.T) map[string]Store {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"redis":  NewRedisStore(client, "test:"),
	}
}

func TestStore_Contract(t *testing.T) {
	ctx := context.Background()

	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := store.Get(ctx, "session:user"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get on empty store: err = %v, want ErrNotFound", err)
			}

			if err := store.Set(ctx, "session:user", `{"id":"1"}`); err != nil {
				t.Fatalf("Set: %v", err)
			}
			value, err := store.Get(ctx, "session:user")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if value != `{"id":"1"}` {
				t.Errorf("Get = %q, want stored value", value)
			}

			if err := store.Set(ctx, "session:user", `{"id":"2"}`); err != nil {
				t.Fatalf("Set overwrite: %v", err)
			}
			if value, _ := store.Get(ctx, "session:user"); value != `{"id":"2"}` {
				t.Errorf("Get after overwrite = %q", value)
			}

			if err := store.Remove(ctx, "session:user"); err != nil {
				t.Fatalf("Remove: %v", err)
			}
			if _, err := store.Get(ctx, "session:user"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get after Remove: err = %v, want ErrNotFound", err)
			}

			// Removing a missing key is not an error.
			if err := store.Remove(ctx, "session:user"); err != nil {
				t.Errorf("Remove missing key: %v", err)
			}
		})
	}
}
