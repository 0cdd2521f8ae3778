package identicon

import (
	"reflect"
	"testing"

	"xdao.co/identicon/digest"
)

// asdfDigest is the MD5 digest of "asdf" (912ec803b2ce49e4a541068d495ab570).
var asdfDigest = []byte{145, 46, 200, 3, 178, 206, 73, 228, 165, 65, 6, 141, 73, 90, 181, 112}

func TestPickColor(t *testing.T) {
	img, err := PickColor(NewImage("asdf", asdfDigest))
	if err != nil {
		t.Fatalf("PickColor: %v", err)
	}
	want := Color{R: 145, G: 46, B: 200}
	if img.Color != want {
		t.Fatalf("Color = %+v, want %+v", img.Color, want)
	}
	if len(img.Digest) != 16 {
		t.Fatalf("digest not carried forward: %d bytes", len(img.Digest))
	}
}

func TestPickColor_Underflow(t *testing.T) {
	for _, n := range []int{0, 1, 2} {
		_, err := PickColor(NewImage("x", make([]byte, n)))
		if !IsKind(err, KindUnderflow) {
			t.Fatalf("digest of %d bytes: got err=%v, want Underflow", n, err)
		}
	}
	if _, err := PickColor(NewImage("x", []byte{1, 2, 3})); err != nil {
		t.Fatalf("3-byte digest should be enough: %v", err)
	}
}

func TestBuildGrid_ReferenceVector(t *testing.T) {
	img, err := BuildGrid(NewImage("asdf", asdfDigest))
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	want := []Cell{
		{145, 0}, {46, 1}, {200, 2}, {46, 3}, {145, 4},
		{3, 5}, {178, 6}, {206, 7}, {178, 8}, {3, 9},
		{73, 10}, {228, 11}, {165, 12}, {228, 13}, {73, 14},
		{65, 15}, {6, 16}, {141, 17}, {6, 18}, {65, 19},
		{73, 20}, {90, 21}, {181, 22}, {90, 23}, {73, 24},
	}
	if !reflect.DeepEqual(img.Grid, want) {
		t.Fatalf("Grid mismatch:\n got %v\nwant %v", img.Grid, want)
	}
}

func TestBuildGrid_DropsTrailingPartialGroup(t *testing.T) {
	tests := []struct {
		name      string
		digestLen int
		wantCells int
	}{
		{"16 bytes drops trailing 1", 16, 25},
		{"15 bytes divides evenly", 15, 25},
		{"17 bytes drops trailing 2", 17, 25},
		{"5 bytes keeps one group", 5, 5},
		{"2 bytes yields no groups", 2, 0},
		{"empty digest", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := BuildGrid(NewImage("x", make([]byte, tt.digestLen)))
			if err != nil {
				t.Fatalf("BuildGrid: %v", err)
			}
			if len(img.Grid) != tt.wantCells {
				t.Fatalf("got %d cells, want %d", len(img.Grid), tt.wantCells)
			}
		})
	}
}

func TestBuildGrid_RowsArePalindromes(t *testing.T) {
	hashers := []digest.Hasher{digest.MD5(), digest.BLAKE2b()}
	inputs := []string{"", "asdf", "banana", "identicon", "a", "0123456789"}
	rowLen := ChunkSize + 2

	for _, h := range hashers {
		for _, in := range inputs {
			img, err := BuildGrid(NewImage(in, h.Sum(in)))
			if err != nil {
				t.Fatalf("%s(%q): BuildGrid: %v", h.Name(), in, err)
			}
			if len(img.Grid)%rowLen != 0 {
				t.Fatalf("%s(%q): grid length %d not a multiple of %d", h.Name(), in, len(img.Grid), rowLen)
			}
			for r := 0; r < len(img.Grid)/rowLen; r++ {
				row := img.Grid[r*rowLen : (r+1)*rowLen]
				for i := range row {
					if row[i].Value != row[rowLen-1-i].Value {
						t.Fatalf("%s(%q): row %d is not a palindrome: %v", h.Name(), in, r, row)
					}
				}
			}
		}
	}
}

func TestBuildGrid_IndicesAreSequential(t *testing.T) {
	img, err := BuildGrid(NewImage("asdf", asdfDigest))
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	for i, c := range img.Grid {
		if c.Index != i {
			t.Fatalf("cell %d has index %d", i, c.Index)
		}
	}
}

func TestFilterEven(t *testing.T) {
	img, err := BuildGrid(NewImage("asdf", asdfDigest))
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	full := img.Grid
	filtered := FilterEven(img)

	wantIndices := []int{1, 2, 3, 6, 7, 8, 11, 13, 16, 18, 21, 23}
	if len(filtered.Grid) != len(wantIndices) {
		t.Fatalf("got %d cells, want %d", len(filtered.Grid), len(wantIndices))
	}
	for i, c := range filtered.Grid {
		if c.Value%2 != 0 {
			t.Fatalf("odd value %d survived the filter", c.Value)
		}
		if c.Index != wantIndices[i] {
			t.Fatalf("cell %d: index %d, want %d", i, c.Index, wantIndices[i])
		}
	}

	// No even-valued cell from the full grid may be dropped.
	var manual []Cell
	for _, c := range full {
		if c.Value%2 == 0 {
			manual = append(manual, c)
		}
	}
	if !reflect.DeepEqual(filtered.Grid, manual) {
		t.Fatalf("filter dropped or reordered even cells")
	}
}

func TestMapRegions_Formula(t *testing.T) {
	// One even-valued cell per grid position exercises every index.
	cells := make([]Cell, Columns*Columns)
	for i := range cells {
		cells[i] = Cell{Value: 2, Index: i}
	}
	img := MapRegions(Image{Grid: cells})
	if len(img.Regions) != len(cells) {
		t.Fatalf("got %d regions, want %d", len(img.Regions), len(cells))
	}
	for i, r := range img.Regions {
		wantMin := Point{X: (i % Columns) * CellSize, Y: (i / Columns) * CellSize}
		wantMax := Point{X: wantMin.X + CellSize, Y: wantMin.Y + CellSize}
		if r.Min != wantMin || r.Max != wantMax {
			t.Fatalf("index %d: region %+v, want %+v-%+v", i, r, wantMin, wantMax)
		}
		if r.Max.X > CanvasSize || r.Max.Y > CanvasSize {
			t.Fatalf("index %d: region %+v exceeds canvas", i, r)
		}
	}
}

func TestMapRegions_BoundaryIndex(t *testing.T) {
	img := MapRegions(Image{Grid: []Cell{{Value: 0, Index: 24}}})
	if len(img.Regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(img.Regions))
	}
	got := img.Regions[0]
	want := Region{Min: Point{200, 200}, Max: Point{250, 250}}
	if got != want {
		t.Fatalf("region = %+v, want %+v", got, want)
	}
}

func TestGenerate_EndToEndVector(t *testing.T) {
	// digest.Fixed keeps the vector independent of any real hash; the MD5
	// case below proves the fixture matches the real digest of "asdf".
	for _, h := range []digest.Hasher{digest.Fixed(asdfDigest), digest.MD5()} {
		img, err := Generate(h, "asdf")
		if err != nil {
			t.Fatalf("%s: Generate: %v", h.Name(), err)
		}
		if img.Color != (Color{145, 46, 200}) {
			t.Fatalf("%s: Color = %+v", h.Name(), img.Color)
		}
		if len(img.Grid) != 12 || len(img.Regions) != 12 {
			t.Fatalf("%s: got %d cells / %d regions, want 12/12", h.Name(), len(img.Grid), len(img.Regions))
		}
		// Index 1 is the first retained cell, index 23 the last.
		if img.Regions[0] != (Region{Point{50, 0}, Point{100, 50}}) {
			t.Fatalf("%s: region for index 1 = %+v", h.Name(), img.Regions[0])
		}
		if img.Regions[11] != (Region{Point{150, 200}, Point{200, 250}}) {
			t.Fatalf("%s: region for index 23 = %+v", h.Name(), img.Regions[11])
		}
	}
}

func TestGenerate_UnderflowFailsFast(t *testing.T) {
	_, err := Generate(digest.Fixed([]byte{1, 2}), "anything")
	if !IsKind(err, KindUnderflow) {
		t.Fatalf("got err=%v, want Underflow", err)
	}
}

func TestStagesDoNotMutateInputs(t *testing.T) {
	sum := append([]byte(nil), asdfDigest...)
	img := NewImage("asdf", sum)

	sum[0] = 0 // the record must have copied the digest
	if img.Digest[0] != 145 {
		t.Fatalf("NewImage aliased the caller's digest")
	}

	before, err := BuildGrid(img)
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	snapshot := append([]Cell(nil), before.Grid...)

	_ = FilterEven(before)
	_ = MapRegions(FilterEven(before))
	if !reflect.DeepEqual(before.Grid, snapshot) {
		t.Fatalf("downstream stages mutated the grid in place")
	}
}
