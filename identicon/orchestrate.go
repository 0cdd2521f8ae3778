package identicon

import "xdao.co/identicon/digest"

// RenderFunc rasterizes the selected color and regions into encoded image
// bytes. The canvas is always CanvasSize x CanvasSize.
type RenderFunc func(c Color, regions []Region) ([]byte, error)

// WriteFunc persists encoded image bytes at the given path.
type WriteFunc func(path string, data []byte) error

// Pipeline composes the derivation with the two boundary collaborators.
//
// Run never retries: the computation is deterministic, so retrying an
// Underflow would not change the outcome, and transient persistence failures
// are the caller's to retry.
type Pipeline struct {
	Hasher digest.Hasher
	Render RenderFunc
	Write  WriteFunc
}

// Run derives the avatar for input, renders it, and writes it under
// name + ".png". It returns the rendered bytes so callers can post-process
// them (content addressing, caching) without re-rendering.
//
// A nil Write skips persistence. Failures surface as *Error with the
// collaborator's error preserved as Cause; no partial file is written when
// rendering fails before the write step.
func (p Pipeline) Run(input, name string) ([]byte, error) {
	img, err := Generate(p.Hasher, input)
	if err != nil {
		return nil, err
	}
	data, err := p.Render(img.Color, img.Regions)
	if err != nil {
		return nil, wrapError(KindRender, "render", "rasterizer failed", err)
	}
	if p.Write != nil {
		if err := p.Write(name+".png", data); err != nil {
			return nil, wrapError(KindPersist, "write", "persistence failed", err)
		}
	}
	return data, nil
}
