package store

import (
	"path/filepath"
	"testing"
	"time"
)

type fixture struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "snap.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRoundTrip(t *testing.T) {
	s := openTemp(t)

	in := fixture{Name: "budget", Total: 52500.75}
	if err := s.Set("budget", in); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var out fixture
	ok, err := s.Get("budget", &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected snapshot to exist")
	}
	if out != in {
		t.Fatalf("got %+v, want %+v", out, in)
	}
}

func TestMissingKey(t *testing.T) {
	s := openTemp(t)

	var out fixture
	ok, err := s.Get("nope", &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("expected miss for unknown key")
	}
}

func TestOverwrite(t *testing.T) {
	s := openTemp(t)

	if err := s.Set("k", fixture{Name: "first"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set("k", fixture{Name: "second"}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var out fixture
	if ok, _ := s.Get("k", &out); !ok {
		t.Fatal("expected snapshot after overwrite")
	}
	if out.Name != "second" {
		t.Fatalf("got %q, want second", out.Name)
	}
}

func TestExpiry(t *testing.T) {
	s := openTemp(t)

	if err := s.SetWithExpiry("stale", fixture{Name: "old"}, time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("SetWithExpiry: %v", err)
	}

	var out fixture
	ok, err := s.Get("stale", &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("expired snapshot should miss")
	}

	keys, err := s.Keys()
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	for _, k := range keys {
		if k == "stale" {
			t.Fatal("expired row should be removed on read")
		}
	}
}

func TestExpiryFuture(t *testing.T) {
	s := openTemp(t)

	if err := s.SetWithExpiry("fresh", fixture{Name: "keep"}, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("SetWithExpiry: %v", err)
	}

	var out fixture
	if ok, _ := s.Get("fresh", &out); !ok {
		t.Fatal("unexpired snapshot should hit")
	}
}

func TestRemove(t *testing.T) {
	s := openTemp(t)

	if err := s.Set("k", fixture{}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Remove("k"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	var out fixture
	if ok, _ := s.Get("k", &out); ok {
		t.Fatal("removed snapshot should miss")
	}
	if err := s.Remove("k"); err != nil {
		t.Fatalf("Remove missing key: %v", err)
	}
}
