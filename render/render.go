// Package render rasterizes derived identicon regions into encoded images.
//
// Rendering is deterministic: identical color/region/option inputs produce
// byte-identical PNG output, so rendered avatars can be content-addressed.
package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"xdao.co/identicon/identicon"
)

// Options configure rasterization.
type Options struct {
	// Background fills the canvas before regions are drawn. Nil means opaque
	// white; color.Transparent yields a transparent canvas.
	Background color.Color
}

// PNG renders regions filled solid with c onto a CanvasSize x CanvasSize
// canvas and returns the encoded PNG bytes. Regions are non-overlapping by
// construction and need not be sorted.
func PNG(c identicon.Color, regions []identicon.Region, opts Options) ([]byte, error) {
	bg := opts.Background
	if bg == nil {
		bg = color.White
	}

	canvas := image.NewRGBA(image.Rect(0, 0, identicon.CanvasSize, identicon.CanvasSize))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	fill := image.NewUniform(color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
	for _, r := range regions {
		rect := image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
		draw.Draw(canvas, rect, fill, image.Point{}, draw.Src)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
