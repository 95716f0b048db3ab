package boltdb

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/filebox/filebox/internal/sharestore"
)

func newTestStore(t *testing.T) sharestore.ShareStore {
	t.Helper()
	store := New(&Config{DbPath: filepath.Join(t.TempDir(), "shares.db")})
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestCreateAndGet(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Create(&sharestore.Share{Path: "/docs/readme.md", Password: "pw"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.Id == "" {
		t.Fatal("Create() returned an empty id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("Create() did not set a creation time")
	}

	got, err := store.Get(created.Id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Path != "/docs/readme.md" || got.Password != "pw" {
		t.Errorf("Get() = %+v", got)
	}
}

func TestGetMissing(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Get("nope"); !errors.Is(err, sharestore.ErrNotExist) {
		t.Errorf("Get(missing) error = %v, want ErrNotExist", err)
	}
}

func TestListAndDelete(t *testing.T) {
	store := newTestStore(t)

	a, _ := store.Create(&sharestore.Share{Path: "/a"})
	b, _ := store.Create(&sharestore.Share{Path: "/b"})

	shares, err := store.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(shares) != 2 {
		t.Fatalf("List() returned %d shares, want 2", len(shares))
	}

	if err = store.Delete(a.Id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err = store.Delete(a.Id); !errors.Is(err, sharestore.ErrNotExist) {
		t.Errorf("second Delete() error = %v, want ErrNotExist", err)
	}

	if _, err = store.Get(b.Id); err != nil {
		t.Errorf("Get(remaining) error = %v", err)
	}
}

func TestPrune(t *testing.T) {
	store := newTestStore(t)

	now := time.Now()
	_, _ = store.Create(&sharestore.Share{Path: "/keep"})
	_, _ = store.Create(&sharestore.Share{Path: "/keep-later", ExpiresAt: now.Add(time.Hour).Unix()})
	_, _ = store.Create(&sharestore.Share{Path: "/drop", ExpiresAt: now.Add(-time.Minute).Unix()})

	pruned, err := store.Prune(now)
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if pruned != 1 {
		t.Errorf("Prune() = %d, want 1", pruned)
	}

	shares, err := store.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(shares) != 2 {
		t.Errorf("List() returned %d shares after prune, want 2", len(shares))
	}
}
