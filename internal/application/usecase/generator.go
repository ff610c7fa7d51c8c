package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"songart/internal/domain/repository/generation"
)

const (
	ModelSchnell = "black-forest-labs/flux-schnell"
	ModelDev     = "black-forest-labs/flux-dev"

	qrControlNetRef = "zylim0702/qr_code_controlnet:628e604e13cf63d8ec58bd4d238474e8986b054bc5e1326e50995fdbc851c557"

	defaultNegativePrompt = "ugly, disfigured, low quality, blurry, nsfw"

	minQRStrength     = 0.8
	maxQRStrength     = 2.5
	defaultQRStrength = 1.8
)

// ErrNoImageURL means the provider output carried no discoverable image URL.
var ErrNoImageURL = errors.New("no image URL in generation output")

type Generator struct {
	runner generation.Runner
}

func NewGenerator(runner generation.Runner) *Generator {
	return &Generator{runner: runner}
}

// GenerateArt runs a text-to-image model and returns the image URL. Model
// "schnell" trades quality for latency and cost; everything else selects
// the slower dev model.
func (g *Generator) GenerateArt(ctx context.Context, prompt, model, aspectRatio string) (string, error) {
	if prompt == "" {
		return "", errors.New("prompt is required")
	}
	if aspectRatio == "" {
		aspectRatio = "1:1"
	}

	var ref string
	var input map[string]interface{}
	if model == "schnell" {
		ref = ModelSchnell
		input = map[string]interface{}{
			"prompt":         prompt,
			"num_outputs":    1,
			"aspect_ratio":   aspectRatio,
			"output_format":  "png",
			"output_quality": 90,
		}
	} else {
		ref = ModelDev
		input = map[string]interface{}{
			"prompt":              prompt,
			"num_outputs":         1,
			"aspect_ratio":        aspectRatio,
			"output_format":       "png",
			"guidance":            3.5,
			"num_inference_steps": 28,
		}
	}

	output, err := g.runner.Run(ctx, ref, input)
	if err != nil {
		return "", err
	}

	return ExtractImageURL(output)
}

// GenerateQRArt conditions generation on a QR code for target. Strength
// balances visual fidelity against scannability and is clamped to
// [0.8, 2.5]. A zero seed draws a fresh random one, so regeneration varies;
// pass a non-zero seed to reproduce a result.
func (g *Generator) GenerateQRArt(ctx context.Context, target, prompt, negativePrompt string, strength float64, seed int64) (string, error) {
	if target == "" {
		return "", errors.New("url is required")
	}
	if prompt == "" {
		return "", errors.New("prompt is required")
	}

	if negativePrompt == "" {
		negativePrompt = defaultNegativePrompt
	}
	if strength == 0 {
		strength = defaultQRStrength
	}
	if strength < minQRStrength {
		strength = minQRStrength
	}
	if strength > maxQRStrength {
		strength = maxQRStrength
	}
	if seed == 0 {
		seed = int64(rand.IntN(1000000))
	}

	output, err := g.runner.Run(ctx, qrControlNetRef, map[string]interface{}{
		"url":                   target,
		"prompt":                prompt,
		"negative_prompt":       negativePrompt,
		"num_inference_steps":   20,
		"guidance_scale":        9,
		"qr_conditioning_scale": strength,
		"seed":                  seed,
	})
	if err != nil {
		return "", err
	}

	return ExtractImageURL(output)
}

// ExtractImageURL normalizes the provider's heterogeneous output shapes
// into a single image URL. Handled shapes: a plain string, a list whose
// first element is a string or an object with a "url"/"href" field, or such
// an object at the top level. Anything else is an extraction failure.
func ExtractImageURL(output interface{}) (string, error) {
	switch v := output.(type) {
	case string:
		if v == "" {
			return "", ErrNoImageURL
		}

		return v, nil

	case []interface{}:
		if len(v) == 0 {
			return "", ErrNoImageURL
		}

		return extractFromItem(v[0])

	default:
		return extractFromItem(output)
	}
}

func extractFromItem(item interface{}) (string, error) {
	switch v := item.(type) {
	case string:
		if v == "" {
			return "", ErrNoImageURL
		}

		return v, nil

	case map[string]interface{}:
		for _, field := range []string{"url", "href"} {
			if s, ok := v[field].(string); ok && s != "" {
				return s, nil
			}
		}

		return "", ErrNoImageURL

	case fmt.Stringer:
		if s := v.String(); strings.HasPrefix(s, "http") {
			return s, nil
		}

		return "", ErrNoImageURL

	default:
		return "", ErrNoImageURL
	}
}
