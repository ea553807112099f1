package save

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"snake-rewind/internal/core"
)

type fakeWorld struct {
	grid core.Grid
	food core.Position
}

func (f fakeWorld) Grid() core.Grid     { return f.grid }
func (f fakeWorld) Food() core.Position { return f.food }

func TestEncodeIsBigEndianFixedWidth(t *testing.T) {
	var buf bytes.Buffer
	h := Capture(fakeWorld{grid: core.NewGrid(80, 50), food: core.Position{X: 3, Y: 258}})
	if err := Encode(&buf, h); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got := buf.Bytes()
	if len(got) != HeaderSize {
		t.Fatalf("encoded %d bytes, expected %d", len(got), HeaderSize)
	}
	want := []byte{
		0, 0, 0, 0, 0, 0, 0, 80,
		0, 0, 0, 0, 0, 0, 0, 50,
		0, 0, 0, 0, 0, 0, 0, 3,
		0, 0, 0, 0, 0, 0, 1, 2,
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("encoded % x, expected % x", got, want)
	}
}

func TestLoadRejectsDimensionMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save_file")
	src := fakeWorld{grid: core.NewGrid(20, 10), food: core.Position{X: 4, Y: 7}}
	if err := Write(path, src); err != nil {
		t.Fatalf("write: %v", err)
	}

	h, err := Load(path, core.NewGrid(20, 10))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if h.Food() != src.food {
		t.Fatalf("food = %v, expected %v", h.Food(), src.food)
	}

	_, err = Load(path, core.NewGrid(21, 10))
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected dimension mismatch, got %v", err)
	}
}

func TestDecodeShortInput(t *testing.T) {
	if _, err := Decode(bytes.NewReader(make([]byte, HeaderSize-1))); err == nil {
		t.Fatal("expected error on truncated header")
	}
}
