// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package runlog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/pdiddy/pubmed-screen/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(types.RunLogConfig{Path: filepath.Join(t.TempDir(), "runs.db")})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndList(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	ranAt := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)
	entries := []Entry{
		{Query: "cancer immunotherapy", RanAt: ranAt, Found: 40, Included: 7, Skipped: 1},
		{Query: "diabetes glp-1", RanAt: ranAt.Add(time.Hour), Found: 12, Included: 3},
	}
	for _, e := range entries {
		if err := store.Record(ctx, e); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := store.List(ctx, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
	// Newest first.
	if got[0].Query != "diabetes glp-1" {
		t.Errorf("got[0].Query = %q, want the most recent run first", got[0].Query)
	}
	if got[1].Query != "cancer immunotherapy" {
		t.Errorf("got[1].Query = %q", got[1].Query)
	}
	if got[1].Found != 40 || got[1].Included != 7 || got[1].Skipped != 1 {
		t.Errorf("got[1] counts = %+v", got[1])
	}
	if !got[1].RanAt.Equal(ranAt) {
		t.Errorf("got[1].RanAt = %v, want %v", got[1].RanAt, ranAt)
	}
}

func TestListLimit(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := store.Record(ctx, Entry{Query: "q", Found: i}); err != nil {
			t.Fatal(err)
		}
	}

	got, err := store.List(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("len(got) = %d, want 2", len(got))
	}
}

func TestListEmpty(t *testing.T) {
	store := testStore(t)

	got, err := store.List(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("len(got) = %d, want 0", len(got))
	}
}

func TestRecordDefaultsTimestamp(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	before := time.Now().Add(-time.Second)
	if err := store.Record(ctx, Entry{Query: "q"}); err != nil {
		t.Fatal(err)
	}

	got, err := store.List(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatal("expected one entry")
	}
	if got[0].RanAt.Before(before) {
		t.Errorf("RanAt = %v, should default to the insert time", got[0].RanAt)
	}
}
