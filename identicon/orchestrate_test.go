package identicon

import (
	"errors"
	"testing"

	"xdao.co/identicon/digest"
)

func TestPipelineRun_WritesNamePlusExtension(t *testing.T) {
	var gotPath string
	var gotData []byte

	p := Pipeline{
		Hasher: digest.MD5(),
		Render: func(c Color, regions []Region) ([]byte, error) {
			return []byte{0x89, 'P', 'N', 'G'}, nil
		},
		Write: func(path string, data []byte) error {
			gotPath = path
			gotData = append([]byte(nil), data...)
			return nil
		},
	}

	data, err := p.Run("asdf", "asdf")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if gotPath != "asdf.png" {
		t.Fatalf("wrote %q, want %q", gotPath, "asdf.png")
	}
	if string(gotData) != string(data) {
		t.Fatalf("persisted bytes differ from returned bytes")
	}
}

func TestPipelineRun_NilWriteSkipsPersistence(t *testing.T) {
	p := Pipeline{
		Hasher: digest.MD5(),
		Render: func(Color, []Region) ([]byte, error) { return []byte("png"), nil },
	}
	if _, err := p.Run("asdf", "asdf"); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestPipelineRun_RenderFailureAbortsBeforeWrite(t *testing.T) {
	renderErr := errors.New("encoder exploded")
	wrote := false

	p := Pipeline{
		Hasher: digest.MD5(),
		Render: func(Color, []Region) ([]byte, error) { return nil, renderErr },
		Write: func(string, []byte) error {
			wrote = true
			return nil
		},
	}

	_, err := p.Run("asdf", "asdf")
	if !IsKind(err, KindRender) {
		t.Fatalf("got err=%v, want Render kind", err)
	}
	if !errors.Is(err, renderErr) {
		t.Fatalf("rasterizer error not preserved as cause: %v", err)
	}
	if wrote {
		t.Fatalf("write ran after a render failure")
	}
}

func TestPipelineRun_PersistErrorSurfacesUnchanged(t *testing.T) {
	writeErr := errors.New("disk full")

	p := Pipeline{
		Hasher: digest.MD5(),
		Render: func(Color, []Region) ([]byte, error) { return []byte("png"), nil },
		Write:  func(string, []byte) error { return writeErr },
	}

	_, err := p.Run("asdf", "asdf")
	if !IsKind(err, KindPersist) {
		t.Fatalf("got err=%v, want Persist kind", err)
	}
	if !errors.Is(err, writeErr) {
		t.Fatalf("persistence error not preserved as cause: %v", err)
	}
}

func TestPipelineRun_UnderflowPropagatesUnchanged(t *testing.T) {
	p := Pipeline{
		Hasher: digest.Fixed([]byte{1}),
		Render: func(Color, []Region) ([]byte, error) {
			t.Fatalf("render ran after an upstream failure")
			return nil, nil
		},
	}
	_, err := p.Run("x", "x")
	if !IsKind(err, KindUnderflow) {
		t.Fatalf("got err=%v, want Underflow", err)
	}
}

func TestIsKind(t *testing.T) {
	err := newError(KindUnderflow, "pick-color", "too short")
	if !IsKind(err, KindUnderflow) {
		t.Fatalf("IsKind missed a direct match")
	}
	if IsKind(err, KindRender) {
		t.Fatalf("IsKind matched the wrong kind")
	}
	wrapped := wrapError(KindPersist, "write", "persistence failed", err)
	if !IsKind(wrapped, KindPersist) {
		t.Fatalf("IsKind missed a wrapped match")
	}
	if IsKind(errors.New("plain"), KindUnderflow) {
		t.Fatalf("IsKind matched an unstructured error")
	}
}
