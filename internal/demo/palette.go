package demo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// PaletteSize is the number of palette slots.
const PaletteSize = 8

// Empty marks an unset palette slot or brush.
const Empty = -1

// Palette holds swatch indexes, or Empty, per slot.
type Palette [PaletteSize]int

// EmptyPalette returns a palette with every slot unset.
func EmptyPalette() Palette {
	var p Palette
	for i := range p {
		p[i] = Empty
	}
	return p
}

// Full reports whether every slot is set.
func (p Palette) Full() bool {
	for _, c := range p {
		if c == Empty {
			return false
		}
	}
	return true
}

// NextSlot returns where the cursor goes after slot curr was set: the first
// empty slot, or the slot after curr (wrapping) when the palette is full.
func (p Palette) NextSlot(curr int) int {
	for i, c := range p {
		if c == Empty {
			return i
		}
	}
	return (curr + 1) % PaletteSize
}

// Set stores swatch in slot curr and returns the next cursor position.
func (p *Palette) Set(curr, swatch int) int {
	if curr < 0 || curr >= PaletteSize {
		return curr
	}
	p[curr] = swatch
	return p.NextSlot(curr)
}

type paletteFile struct {
	Slots []int `toml:"slots" comment:"Swatch index per slot, -1 for empty"`
}

// LoadPalette reads a palette saved by SavePalette. A missing file yields
// an empty palette. Out-of-range entries are treated as empty.
func LoadPalette(path string) (Palette, error) {
	p := EmptyPalette()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return p, nil
		}
		return p, fmt.Errorf("reading palette %s: %w", path, err)
	}

	var f paletteFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return p, fmt.Errorf("parsing palette %s: %w", path, err)
	}
	for i, c := range f.Slots {
		if i >= PaletteSize {
			break
		}
		if c >= 0 && c < SwatchCount {
			p[i] = c
		}
	}
	return p, nil
}

// SavePalette writes p to path as TOML.
func SavePalette(path string, p Palette) error {
	data, err := toml.Marshal(paletteFile{Slots: p[:]})
	if err != nil {
		return fmt.Errorf("encoding palette: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating palette directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
