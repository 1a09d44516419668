// Package assets resolves logical sprite names to terminal glyphs.
// It is the terminal rendition of an image provider: a fixed table of
// known sprites plus a deterministic fallback so a missing name still
// renders something stable instead of failing.
package assets

import (
	"hash/fnv"

	"github.com/gamealchemy/arcade/internal/core"
)

// Sprite is a drawable unit: one rune plus a foreground color.
type Sprite struct {
	Rune  rune
	Color core.Color
}

// sprites is the fixed table of known game parts.
var sprites = map[string]Sprite{
	"tile":         {Rune: '░', Color: core.ColorGray},
	"block":        {Rune: '█', Color: core.ColorWhite},
	"mine":         {Rune: '✸', Color: core.ColorBrightRed},
	"flag":         {Rune: '⚑', Color: core.ColorBrightYellow},
	"apple":        {Rune: '@', Color: core.ColorBrightRed},
	"apple-poison": {Rune: '%', Color: core.ColorBrightMagenta},
	"snake-head":   {Rune: 'O', Color: core.ColorBrightGreen},
	"snake-body":   {Rune: 'o', Color: core.ColorGreen},
	"pipe-node":    {Rune: '●', Color: core.ColorWhite},
	"pipe-h":       {Rune: '━', Color: core.ColorWhite},
	"pipe-v":       {Rune: '┃', Color: core.ColorWhite},
	"gallows":      {Rune: '┼', Color: core.ColorGray},
}

// fallbackColors are the colors a hashed fallback can land on.
// Default and gray are excluded so fallbacks stay visible.
var fallbackColors = []core.Color{
	core.ColorRed, core.ColorGreen, core.ColorYellow, core.ColorBlue,
	core.ColorMagenta, core.ColorCyan, core.ColorBrightRed,
	core.ColorBrightGreen, core.ColorBrightYellow, core.ColorBrightBlue,
	core.ColorBrightMagenta, core.ColorBrightCyan, core.ColorOrange,
	core.ColorPink,
}

// Lookup resolves a logical name to a sprite. Unknown names produce a
// solid block in a color derived from the name hash, so the same name
// always falls back to the same look.
func Lookup(name string) Sprite {
	if s, ok := sprites[name]; ok {
		return s
	}
	h := fnv.New32a()
	h.Write([]byte(name))
	return Sprite{
		Rune:  '▒',
		Color: fallbackColors[h.Sum32()%uint32(len(fallbackColors))],
	}
}

// Known reports whether a name is in the fixed sprite table.
func Known(name string) bool {
	_, ok := sprites[name]
	return ok
}
