package docstore_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mkettu/fitweek/internal/docstore"
	"github.com/mkettu/fitweek/internal/testhelpers"
)

func newTestStore(t *testing.T) *docstore.Store {
	t.Helper()
	store, err := docstore.Open(t.Context(), ":memory:", testhelpers.NewLogger(testhelpers.NewWriter(t)))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := store.Close(); closeErr != nil {
			t.Errorf("close store: %v", closeErr)
		}
	})
	return store
}

type note struct {
	Title string `json:"title"`
	Pin   bool   `json:"pin"`
	Rank  int    `json:"rank"`
}

func TestSetGet(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()

	want := note{Title: "first", Pin: true, Rank: 1}
	if err := store.Set(ctx, "users/u1/notes/n1", want); err != nil {
		t.Fatalf("set: %v", err)
	}

	doc, err := store.Get(ctx, "users/u1/notes/n1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got := doc.ID(); got != "n1" {
		t.Errorf("ID() = %q, want %q", got, "n1")
	}

	var got note
	if err = doc.Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestGetNotFound(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	_, err := store.Get(t.Context(), "users/u1/notes/missing")
	if !errors.Is(err, docstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSetOverwrites(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()

	if err := store.Set(ctx, "users/u1/notes/n1", note{Title: "old", Pin: true}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, "users/u1/notes/n1", note{Title: "new"}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	doc, err := store.Get(ctx, "users/u1/notes/n1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var got note
	if err = doc.Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Full overwrite must clear fields absent from the new document.
	if got.Pin {
		t.Error("expected Pin to be cleared by overwrite")
	}
	if got.Title != "new" {
		t.Errorf("Title = %q, want %q", got.Title, "new")
	}
}

func TestUpdateMergesFields(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()

	if err := store.Set(ctx, "users/u1/notes/n1", note{Title: "keep", Pin: true, Rank: 3}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Update(ctx, "users/u1/notes/n1", map[string]any{"rank": 9}); err != nil {
		t.Fatalf("update: %v", err)
	}

	doc, err := store.Get(ctx, "users/u1/notes/n1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var got note
	if err = doc.Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := note{Title: "keep", Pin: true, Rank: 9}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("merged document mismatch (-want +got):\n%s", diff)
	}

	if err = store.Update(ctx, "users/u1/notes/missing", map[string]any{"rank": 1}); !errors.Is(err, docstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound updating missing document, got %v", err)
	}
}

func TestAddGeneratesID(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()

	id, err := store.Add(ctx, "users/u1/notes", note{Title: "added"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty generated id")
	}

	if _, err = store.Get(ctx, "users/u1/notes/"+id); err != nil {
		t.Errorf("get added document: %v", err)
	}
}

func TestQueryOrdering(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()

	for _, n := range []note{
		{Title: "b", Rank: 2},
		{Title: "c", Rank: 3},
		{Title: "a", Rank: 1},
	} {
		if err := store.Set(ctx, "users/u1/notes/"+n.Title, n); err != nil {
			t.Fatalf("set: %v", err)
		}
	}
	// A document in a different collection must not leak into the query.
	if err := store.Set(ctx, "users/u2/notes/x", note{Title: "x"}); err != nil {
		t.Fatalf("set: %v", err)
	}

	docs, err := store.Query(ctx, "users/u1/notes", docstore.OrderBy("rank"))
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	var titles []string
	for _, doc := range docs {
		var n note
		if err = doc.Decode(&n); err != nil {
			t.Fatalf("decode: %v", err)
		}
		titles = append(titles, n.Title)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, titles); diff != "" {
		t.Errorf("ascending order mismatch (-want +got):\n%s", diff)
	}

	docs, err = store.Query(ctx, "users/u1/notes", docstore.OrderBy("rank"), docstore.Descending())
	if err != nil {
		t.Fatalf("query descending: %v", err)
	}
	if len(docs) != 3 || docs[0].ID() != "c" {
		t.Errorf("expected descending order starting with c, got %d docs", len(docs))
	}

	if _, err = store.Query(ctx, "users/u1/notes", docstore.OrderBy("rank; DROP TABLE documents")); err == nil {
		t.Error("expected error for invalid order-by field")
	}
}

func TestBatchCommitIsAtomic(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := t.Context()

	if err := store.Set(ctx, "users/u1/notes/old", note{Title: "old"}); err != nil {
		t.Fatalf("set: %v", err)
	}

	batch := store.Batch()
	batch.Delete("users/u1/notes/old")
	batch.Set("users/u1/notes/new1", note{Title: "new1"})
	batch.Set("users/u1/notes/new2", note{Title: "new2"})
	if got, want := batch.Len(), 3; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	if err := batch.Commit(ctx); err != nil {
		t.Fatalf("commit: %v", err)
	}

	if _, err := store.Get(ctx, "users/u1/notes/old"); !errors.Is(err, docstore.ErrNotFound) {
		t.Errorf("expected old document deleted, got %v", err)
	}
	docs, err := store.Query(ctx, "users/u1/notes")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(docs) != 2 {
		t.Errorf("expected 2 documents after batch, got %d", len(docs))
	}

	// An empty batch commit is a no-op.
	if err = store.Batch().Commit(ctx); err != nil {
		t.Errorf("empty batch commit: %v", err)
	}

	// A batch with an unencodable document must fail without applying anything.
	bad := store.Batch()
	bad.Set("users/u1/notes/bad", map[string]any{"ch": make(chan int)})
	bad.Delete("users/u1/notes/new1")
	if err = bad.Commit(ctx); err == nil {
		t.Fatal("expected commit error for unencodable fields")
	}
	if _, err = store.Get(ctx, "users/u1/notes/new1"); err != nil {
		t.Errorf("expected new1 untouched after failed batch, got %v", err)
	}
}
