package fcmToken

import (
	"context"
	"testing"

	"github.com/walhallaapp/functions/store"
)

type fakeTokens struct {
	entries map[string]store.TokenEntry
	err     error
}

var _ store.TokenStore = (*fakeTokens)(nil)

func newFakeTokens() *fakeTokens {
	return &fakeTokens{entries: make(map[string]store.TokenEntry)}
}

func (f *fakeTokens) Save(_ context.Context, personID string, entry store.TokenEntry) error {
	if f.err != nil {
		return f.err
	}
	f.entries[personID] = entry
	return nil
}

func (f *fakeTokens) Delete(_ context.Context, personID string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.entries, personID)
	return nil
}

func (f *fakeTokens) FindByUID(_ context.Context, uid string) (store.TokenEntry, error) {
	for _, entry := range f.entries {
		if entry.UID == uid {
			return entry, nil
		}
	}
	return store.TokenEntry{}, store.ErrNotFound
}

func strPtr(s string) *string { return &s }

func TestOnWriteCreateAddsEntry(t *testing.T) {
	ctx := context.Background()
	fake := newFakeTokens()
	h := NewHandler(fake)

	after := &store.Person{UID: strPtr("u1"), FirstName: "Max", LastName: "Muster", FCMToken: "tok-1"}
	if err := h.OnWrite(ctx, "p1", nil, after); err != nil {
		t.Fatalf("OnWrite: %v", err)
	}

	entry, ok := fake.entries["p1"]
	if !ok {
		t.Fatal("entry not created")
	}
	if entry.UID != "u1" || entry.FirstName != "Max" || entry.LastName != "Muster" || entry.FCMToken != "tok-1" {
		t.Fatalf("entry fields wrong: %+v", entry)
	}
}

func TestOnWriteDeleteRemovesEntry(t *testing.T) {
	ctx := context.Background()
	fake := newFakeTokens()
	fake.entries["p1"] = store.TokenEntry{UID: "u1"}
	h := NewHandler(fake)

	before := &store.Person{UID: strPtr("u1"), FirstName: "Max"}
	if err := h.OnWrite(ctx, "p1", before, nil); err != nil {
		t.Fatalf("OnWrite: %v", err)
	}
	if _, ok := fake.entries["p1"]; ok {
		t.Fatal("entry should be gone after person delete")
	}
}

func TestOnWriteSignOutRemovesEntry(t *testing.T) {
	ctx := context.Background()
	fake := newFakeTokens()
	fake.entries["p1"] = store.TokenEntry{UID: "u1"}
	h := NewHandler(fake)

	before := &store.Person{UID: strPtr("u1")}
	after := &store.Person{UID: nil, FirstName: "Max"}
	if err := h.OnWrite(ctx, "p1", before, after); err != nil {
		t.Fatalf("OnWrite: %v", err)
	}
	if _, ok := fake.entries["p1"]; ok {
		t.Fatal("entry should be gone after sign out")
	}
}

func TestOnWriteUpdateOverwritesEntry(t *testing.T) {
	ctx := context.Background()
	fake := newFakeTokens()
	fake.entries["p1"] = store.TokenEntry{UID: "u1", FCMToken: "old"}
	h := NewHandler(fake)

	before := &store.Person{UID: strPtr("u1"), FCMToken: "old"}
	after := &store.Person{UID: strPtr("u1"), FirstName: "Max", FCMToken: "new"}
	if err := h.OnWrite(ctx, "p1", before, after); err != nil {
		t.Fatalf("OnWrite: %v", err)
	}

	if fake.entries["p1"].FCMToken != "new" {
		t.Fatalf("entry not overwritten: %+v", fake.entries["p1"])
	}
}

func TestOnWriteBothAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	fake := newFakeTokens()
	h := NewHandler(fake)

	if err := h.OnWrite(ctx, "p1", nil, nil); err != nil {
		t.Fatalf("OnWrite: %v", err)
	}
	if len(fake.entries) != 0 {
		t.Fatal("no entry should exist")
	}
}
