// Package save persists the grid dimensions and food cell as four 8-byte
// big-endian integers: width, height, food x, food y.
package save

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"snake-rewind/internal/core"
)

// DefaultPath is used when no file path is configured.
const DefaultPath = "save_file"

// HeaderSize is the encoded length in bytes.
const HeaderSize = 4 * 8

// ErrDimensionMismatch is returned when a save was written for a different grid.
var ErrDimensionMismatch = errors.New("saved grid dimensions do not match")

// Source is the state a save captures.
type Source interface {
	Grid() core.Grid
	Food() core.Position
}

// Header is the fixed-width save record.
type Header struct {
	Width  uint64
	Height uint64
	FoodX  uint64
	FoodY  uint64
}

// Capture builds a header from the current world state.
func Capture(src Source) Header {
	g, food := src.Grid(), src.Food()
	return Header{
		Width:  uint64(g.W),
		Height: uint64(g.H),
		FoodX:  uint64(food.X),
		FoodY:  uint64(food.Y),
	}
}

// Food returns the saved food cell.
func (h Header) Food() core.Position {
	return core.Position{X: int(h.FoodX), Y: int(h.FoodY)}
}

// Check compares the saved dimensions against g.
func (h Header) Check(g core.Grid) error {
	if h.Width != uint64(g.W) || h.Height != uint64(g.H) {
		return fmt.Errorf("%w: saved %dx%d, configured %dx%d", ErrDimensionMismatch, h.Width, h.Height, g.W, g.H)
	}
	return nil
}

// Encode writes h to w.
func Encode(w io.Writer, h Header) error {
	var buf [HeaderSize]byte
	binary.BigEndian.PutUint64(buf[0:], h.Width)
	binary.BigEndian.PutUint64(buf[8:], h.Height)
	binary.BigEndian.PutUint64(buf[16:], h.FoodX)
	binary.BigEndian.PutUint64(buf[24:], h.FoodY)
	_, err := w.Write(buf[:])
	return err
}

// Decode reads one header from r.
func Decode(r io.Reader) (Header, error) {
	var buf [HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Header{}, fmt.Errorf("read save header: %w", err)
	}
	return Header{
		Width:  binary.BigEndian.Uint64(buf[0:]),
		Height: binary.BigEndian.Uint64(buf[8:]),
		FoodX:  binary.BigEndian.Uint64(buf[16:]),
		FoodY:  binary.BigEndian.Uint64(buf[24:]),
	}, nil
}

// Write captures src and writes it to path, replacing any existing file.
func Write(path string, src Source) error {
	if path == "" {
		path = DefaultPath
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create save file: %w", err)
	}
	if err := Encode(f, Capture(src)); err != nil {
		f.Close()
		return fmt.Errorf("write save file: %w", err)
	}
	return f.Close()
}

// Load reads path and validates it against g.
func Load(path string, g core.Grid) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, fmt.Errorf("open save file: %w", err)
	}
	defer f.Close()
	h, err := Decode(f)
	if err != nil {
		return Header{}, err
	}
	if err := h.Check(g); err != nil {
		return Header{}, err
	}
	return h, nil
}
