package generation

import "context"

// Runner executes a model on the generation provider and returns its raw
// output, which may be a string, a list, or an opaque object depending on
// the model.
type Runner interface {
	Run(ctx context.Context, ref string, input map[string]interface{}) (interface{}, error)
}
