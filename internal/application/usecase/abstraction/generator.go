package abstraction

import "context"

type Generator interface {
	GenerateArt(ctx context.Context, prompt, model, aspectRatio string) (string, error)
	GenerateQRArt(ctx context.Context, target, prompt, negativePrompt string, strength float64, seed int64) (string, error)
}
