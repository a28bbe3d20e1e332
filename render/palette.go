// Package render holds what the drawing surfaces share: the palette used for
// assets the game only names.
package render

import "image/color"

var (
	// Wall is the outline colour of obstacles on generated backgrounds.
	Wall = color.RGBA{R: 0x21, G: 0x21, B: 0xde, A: 0xff}
	// Floor is the background fill.
	Floor = color.RGBA{A: 0xff}
)

var chaserColors = map[string]color.RGBA{
	"red":    {R: 0xff, A: 0xff},
	"blue":   {R: 0x00, G: 0xb4, B: 0xff, A: 0xff},
	"yellow": {R: 0xff, G: 0xb8, B: 0x52, A: 0xff},
	"pink":   {R: 0xff, G: 0xb8, B: 0xff, A: 0xff},
}

// ChaserColor resolves a chaser colour name. Unknown names are grey.
func ChaserColor(name string) color.RGBA {
	if c, ok := chaserColors[name]; ok {
		return c
	}
	return color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}
}
