package replicate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/replicate/replicate-go"

	"songart/pkg/logger"
)

type Config struct {
	Token   string
	Timeout int64 `yaml:"timeout_in_ms"`
}

// Client runs models on the generation provider. Model refs are either
// "owner/name" for official models or "owner/name:version" for community
// models pinned to a version.
type Client struct {
	client  *replicate.Client
	timeout time.Duration
}

func New(cfg Config) (*Client, error) {
	r8, err := replicate.NewClient(replicate.WithToken(cfg.Token))
	if err != nil {
		return nil, fmt.Errorf("generation client init failed: %w", err)
	}

	return &Client{
		client:  r8,
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}, nil
}

func (c *Client) Run(ctx context.Context, ref string, input map[string]interface{}) (interface{}, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	predictionInput := replicate.PredictionInput(input)

	var prediction *replicate.Prediction
	var err error
	if version, ok := splitVersion(ref); ok {
		prediction, err = c.client.CreatePrediction(ctx, version, predictionInput, nil, false)
	} else {
		parts := strings.SplitN(ref, "/", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid model ref %q", ref)
		}
		prediction, err = c.client.CreatePredictionWithModel(ctx, parts[0], parts[1], predictionInput, nil, false)
	}
	if err != nil {
		return nil, fmt.Errorf("prediction create failed: %w", err)
	}

	if err := c.client.Wait(ctx, prediction); err != nil {
		return nil, fmt.Errorf("prediction wait failed: %w", err)
	}

	if prediction.Status != replicate.Succeeded {
		logger.Error("prediction did not succeed", "ref", ref, "status", string(prediction.Status))

		return nil, errors.New("generation request failed upstream")
	}

	return prediction.Output, nil
}

// splitVersion extracts the version hash from an "owner/name:version" ref.
func splitVersion(ref string) (string, bool) {
	idx := strings.LastIndex(ref, ":")
	if idx < 0 {
		return "", false
	}

	return ref[idx+1:], true
}
