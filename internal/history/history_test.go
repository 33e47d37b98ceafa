package history

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() unexpected error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openTestStore(t)

	first := []byte(`{"version": "1.0", "type": "droplink_qr_login"}`)
	second := []byte(`otpauth://totp/Example:tester@example.com?secret=ABC`)

	if err := store.Record("valid", first); err != nil {
		t.Fatalf("Record() unexpected error = %v", err)
	}
	if err := store.Record("foreign", second); err != nil {
		t.Fatalf("Record() unexpected error = %v", err)
	}

	entries, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent() unexpected error = %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Recent() returned %d entries, want 2", len(entries))
	}

	// Newest first
	if entries[0].Variant != "foreign" || entries[1].Variant != "valid" {
		t.Errorf("Recent() order = [%s, %s], want [foreign, valid]",
			entries[0].Variant, entries[1].Variant)
	}

	// Payloads must survive the zstd round trip byte for byte
	if string(entries[0].Payload) != string(second) {
		t.Errorf("payload round trip changed data: got %q", entries[0].Payload)
	}
	if string(entries[1].Payload) != string(first) {
		t.Errorf("payload round trip changed data: got %q", entries[1].Payload)
	}

	for _, e := range entries {
		if e.CreatedAt.IsZero() {
			t.Errorf("entry %d has zero CreatedAt", e.ID)
		}
	}
}

func TestRecentEmptyStore(t *testing.T) {
	store := openTestStore(t)

	entries, err := store.Recent(5)
	if err != nil {
		t.Fatalf("Recent() unexpected error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Recent() on empty store returned %d entries", len(entries))
	}
}

func TestRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if err := store.Record("valid", []byte("{}")); err != nil {
			t.Fatalf("Record() unexpected error = %v", err)
		}
	}

	entries, err := store.Recent(3)
	if err != nil {
		t.Fatalf("Recent() unexpected error = %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("Recent(3) returned %d entries, want 3", len(entries))
	}
}
