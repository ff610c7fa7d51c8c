package usecase

import (
	"bytes"
	"image/png"

	"songart/internal/render"
)

// Compositor flattens a render pass into PNG bytes. Rendering is
// synchronous per request, so every response reflects exactly the inputs
// of its own request.
type Compositor struct{}

func NewCompositor() *Compositor {
	return &Compositor{}
}

func (c *Compositor) Composite(params render.Params) ([]byte, error) {
	img, err := render.Compose(params)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
