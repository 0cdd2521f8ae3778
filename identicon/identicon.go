// Package identicon derives a deterministic, horizontally symmetric pixel-art
// avatar from an arbitrary input string.
//
// The derivation is a pipeline of pure stages over an accumulating immutable
// record: a digest seeds the record, a color is picked from its first bytes,
// the digest is chunked and mirrored into a grid, odd-valued cells are
// filtered out, and the surviving cells are mapped to square pixel regions on
// a fixed-size canvas. The same input always produces the same color, grid,
// and regions; no stage mutates its input.
//
// Hashing, rasterization, and persistence are collaborators injected at the
// boundary (see digest.Hasher and Pipeline), so every stage here is testable
// against known byte sequences.
package identicon

// Grid and canvas geometry. A 16-byte digest chunked by ChunkSize yields five
// mirrored rows of Columns cells each, so the canvas is a Columns x Columns
// board of CellSize squares.
const (
	ChunkSize  = 3
	Columns    = 5
	CellSize   = 50
	CanvasSize = Columns * CellSize
)

// Color is the fill color derived from the first three digest bytes.
type Color struct {
	R, G, B uint8
}

// Point is a 2D pixel coordinate on the canvas.
type Point struct {
	X, Y int
}

// Region is an axis-aligned square on the canvas, described by its top-left
// (Min) and bottom-right (Max) corners.
type Region struct {
	Min, Max Point
}

// Cell pairs a digest-derived byte with its row-major position in the
// mirrored grid. Index is assigned once at grid-build time and is never
// renumbered, so it survives filtering unchanged.
type Cell struct {
	Value byte
	Index int
}

// Image is the accumulating record threaded through the pipeline. Each stage
// returns a new Image with exactly one more field populated; prior fields are
// carried forward untouched. Once Regions is set the record is final and is
// handed to the rasterizer collaborator.
type Image struct {
	Input   string
	Digest  []byte
	Color   Color
	Grid    []Cell
	Regions []Region
}

// NewImage seeds the record with an input string and its digest. The digest
// is copied so later hasher reuse cannot alias into the record.
func NewImage(input string, sum []byte) Image {
	return Image{Input: input, Digest: append([]byte(nil), sum...)}
}
