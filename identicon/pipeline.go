package identicon

import (
	"fmt"

	"xdao.co/identicon/digest"
)

// PickColor sets the color from the first three digest bytes.
//
// Fails with an Underflow error when the digest carries fewer than three
// bytes; every other digest length is accepted.
func PickColor(img Image) (Image, error) {
	if len(img.Digest) < 3 {
		return Image{}, newError(KindUnderflow, "pick-color",
			fmt.Sprintf("digest has %d bytes, need at least 3", len(img.Digest)))
	}
	img.Color = Color{R: img.Digest[0], G: img.Digest[1], B: img.Digest[2]}
	return img, nil
}

// BuildGrid partitions the digest into consecutive groups of ChunkSize bytes,
// mirrors each group into a palindromic row, and flattens the rows into a
// single sequence of cells with row-major indices.
//
// A trailing group shorter than ChunkSize is dropped entirely. This is the
// reference truncation policy, not an error: a 16-byte digest yields five
// full groups and one discarded byte.
//
// Mirroring appends the group's second and first elements after the group
// itself, so [a,b,c] becomes [a,b,c,b,a]. A retained group with fewer than
// two elements cannot be mirrored and fails with an Underflow error; with
// the fixed ChunkSize of 3 this is unreachable, but the guard keeps the
// contract honest should the chunking ever become configurable.
func BuildGrid(img Image) (Image, error) {
	rows := len(img.Digest) / ChunkSize
	grid := make([]Cell, 0, rows*(ChunkSize+2))
	for r := 0; r < rows; r++ {
		group := img.Digest[r*ChunkSize : (r+1)*ChunkSize]
		if len(group) < 2 {
			return Image{}, newError(KindUnderflow, "build-grid",
				fmt.Sprintf("group %d has %d bytes, need at least 2 to mirror", r, len(group)))
		}
		row := append(append(make([]byte, 0, len(group)+2), group...), group[1], group[0])
		for _, v := range row {
			grid = append(grid, Cell{Value: v, Index: len(grid)})
		}
	}
	img.Grid = grid
	return img, nil
}

// FilterEven retains only the cells whose value is even. Relative order is
// preserved and indices keep their original grid positions.
func FilterEven(img Image) Image {
	kept := make([]Cell, 0, len(img.Grid))
	for _, c := range img.Grid {
		if c.Value%2 == 0 {
			kept = append(kept, c)
		}
	}
	img.Grid = kept
	return img
}

// MapRegions converts each retained cell's grid index into the opposite
// corners of a CellSize square on the Columns-wide canvas, in the same order
// as the filtered grid.
func MapRegions(img Image) Image {
	regions := make([]Region, 0, len(img.Grid))
	for _, c := range img.Grid {
		col := c.Index % Columns
		row := c.Index / Columns
		min := Point{X: col * CellSize, Y: row * CellSize}
		regions = append(regions, Region{
			Min: min,
			Max: Point{X: min.X + CellSize, Y: min.Y + CellSize},
		})
	}
	img.Regions = regions
	return img
}

// Generate runs the full derivation for input: digest, color, mirrored grid,
// even-cell filter, region mapping. The first failing stage aborts the run;
// nothing downstream executes.
func Generate(h digest.Hasher, input string) (Image, error) {
	img := NewImage(input, h.Sum(input))
	img, err := PickColor(img)
	if err != nil {
		return Image{}, err
	}
	img, err = BuildGrid(img)
	if err != nil {
		return Image{}, err
	}
	return MapRegions(FilterEven(img)), nil
}
