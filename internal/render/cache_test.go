package render

import (
	"sync"
	"testing"

	"github.com/notnil/chess"

	"github.com/ironsheep/chess-mcp/internal/board"
)

func TestCache_Hit(t *testing.T) {
	cache := NewCache(4)
	pos := mustParse(t, board.StartFEN)

	first, err := cache.Render(pos, DefaultOptions())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	second, err := cache.Render(pos, DefaultOptions())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if first != second {
		t.Error("second render should come from the cache")
	}
	if cache.Len() != 1 {
		t.Errorf("Len: got %d, want 1", cache.Len())
	}
}

func TestCache_KeyIncludesOptions(t *testing.T) {
	cache := NewCache(8)
	pos := mustParse(t, board.StartFEN)

	black := DefaultOptions()
	black.Perspective = PerspectiveBlack
	highlight := DefaultOptions()
	highlight.Highlight = []chess.Square{chess.E2, chess.E4}

	for _, opts := range []Options{DefaultOptions(), black, highlight} {
		if _, err := cache.Render(pos, opts); err != nil {
			t.Fatalf("Render failed: %v", err)
		}
	}
	if _, err := cache.Render(mustParse(t, kingsOnly), DefaultOptions()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if cache.Len() != 4 {
		t.Errorf("Len: got %d, want 4", cache.Len())
	}
}

func TestCache_EquivalentOptionsShareEntry(t *testing.T) {
	cache := NewCache(8)
	pos := mustParse(t, board.StartFEN)

	upper := DefaultOptions()
	upper.LightColor = "#F0D9B5"
	upper.DarkColor = "b58863"
	reordered := DefaultOptions()
	reordered.Highlight = []chess.Square{chess.E4, chess.E2, chess.E4}
	sorted := DefaultOptions()
	sorted.Highlight = []chess.Square{chess.E2, chess.E4}

	first, err := cache.Render(pos, Options{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	for _, opts := range []Options{DefaultOptions(), upper} {
		got, err := cache.Render(pos, opts)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if got != first {
			t.Errorf("options %+v should reuse the cached board", opts)
		}
	}
	if cache.Len() != 1 {
		t.Errorf("Len: got %d, want 1", cache.Len())
	}

	a, err := cache.Render(pos, reordered)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	b, err := cache.Render(pos, sorted)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if a != b {
		t.Error("highlight order and duplicates should not change the entry")
	}
	if cache.Len() != 2 {
		t.Errorf("Len: got %d, want 2", cache.Len())
	}
}

func TestCache_EvictsOldest(t *testing.T) {
	cache := NewCache(2)
	a := mustParse(t, board.StartFEN)
	b := mustParse(t, kingsOnly)
	c := mustParse(t, "8/P7/8/8/8/8/8/k6K w - - 0 1")

	firstA, _ := cache.Render(a, DefaultOptions())
	_, _ = cache.Render(b, DefaultOptions())
	_, _ = cache.Render(c, DefaultOptions())

	if cache.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", cache.Len())
	}
	againA, _ := cache.Render(a, DefaultOptions())
	if againA == firstA {
		t.Error("oldest entry should have been evicted")
	}
}

func TestCache_ErrorsNotCached(t *testing.T) {
	cache := NewCache(2)
	opts := DefaultOptions()
	opts.LightColor = "nope"

	if _, err := cache.Render(mustParse(t, kingsOnly), opts); err == nil {
		t.Fatal("expected error")
	}
	if cache.Len() != 0 {
		t.Errorf("Len: got %d, want 0", cache.Len())
	}
}

func TestCache_Clear(t *testing.T) {
	cache := NewCache(0)
	if cache.max != DefaultCacheSize {
		t.Errorf("max: got %d, want %d", cache.max, DefaultCacheSize)
	}
	_, _ = cache.Render(mustParse(t, kingsOnly), DefaultOptions())
	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Len after Clear: got %d", cache.Len())
	}
}

func TestCache_Concurrent(t *testing.T) {
	cache := NewCache(4)
	pos := mustParse(t, board.StartFEN)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Render(pos, DefaultOptions()); err != nil {
				t.Errorf("Render failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if cache.Len() != 1 {
		t.Errorf("Len: got %d, want 1", cache.Len())
	}
}
