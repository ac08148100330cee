package users

import (
	"context"
	"testing"

	"arzbot/config"
)

func TestStoreDisabledWithoutAddr(t *testing.T) {
	store, err := NewStore(context.Background(), &config.Config{})
	if err != nil {
		t.Fatalf("disabled store should not error: %v", err)
	}
	if store.Enabled() {
		t.Fatal("store without redis addr must be disabled")
	}

	// Every operation is a safe no-op when disabled.
	store.LogInteraction(context.Background(), 42, "convert")
	if n, err := store.InteractionCount(context.Background(), 42); err != nil || n != 0 {
		t.Fatalf("disabled count = %d, %v", n, err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("disabled close: %v", err)
	}
}

func TestStoreNilSafe(t *testing.T) {
	var store *Store
	if store.Enabled() {
		t.Fatal("nil store must report disabled")
	}
}
