package abstraction

import "songart/internal/render"

type Compositor interface {
	Composite(params render.Params) ([]byte, error)
}
