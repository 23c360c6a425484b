package session

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestBoltStorageRoundTrip(t *testing.T) {
	storage, err := NewBoltStorage(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("NewBoltStorage() error = %+v", err)
	}
	defer storage.Close()

	if err := storage.Put("token", []byte("token-1")); err != nil {
		t.Fatalf("Put() error = %+v", err)
	}

	value, err := storage.Get("token")
	if err != nil {
		t.Fatalf("Get() error = %+v", err)
	}
	if !bytes.Equal(value, []byte("token-1")) {
		t.Errorf("Get() = %q, want token-1", value)
	}

	if err := storage.Delete("token"); err != nil {
		t.Fatalf("Delete() error = %+v", err)
	}

	value, err = storage.Get("token")
	if err != nil {
		t.Fatalf("Get() after delete error = %+v", err)
	}
	if value != nil {
		t.Errorf("Get() after delete = %q, want nil", value)
	}
}

func TestBoltStorageAbsentKey(t *testing.T) {
	storage, err := NewBoltStorage(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("NewBoltStorage() error = %+v", err)
	}
	defer storage.Close()

	value, err := storage.Get("never-written")
	if err != nil {
		t.Fatalf("Get() error = %+v", err)
	}
	if value != nil {
		t.Errorf("Get() = %q, want nil", value)
	}

	if err := storage.Delete("never-written"); err != nil {
		t.Errorf("Delete() of an absent key error = %+v", err)
	}
}
