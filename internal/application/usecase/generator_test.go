package usecase

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	gotRef   string
	gotInput map[string]interface{}
	output   interface{}
	err      error
}

func (f *fakeRunner) Run(_ context.Context, ref string, input map[string]interface{}) (interface{}, error) {
	f.gotRef = ref
	f.gotInput = input

	return f.output, f.err
}

func TestGenerateArt(t *testing.T) {
	t.Run("schnell model and defaults", func(t *testing.T) {
		runner := &fakeRunner{output: []interface{}{"https://cdn.example.com/a.png"}}
		gen := NewGenerator(runner)

		got, err := gen.GenerateArt(context.Background(), "a misty forest", "schnell", "")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/a.png", got)
		assert.Equal(t, ModelSchnell, runner.gotRef)
		assert.Equal(t, "1:1", runner.gotInput["aspect_ratio"])
		assert.Equal(t, 90, runner.gotInput["output_quality"])
		assert.NotContains(t, runner.gotInput, "guidance")
	})

	t.Run("other models select dev", func(t *testing.T) {
		runner := &fakeRunner{output: "https://cdn.example.com/b.png"}
		gen := NewGenerator(runner)

		_, err := gen.GenerateArt(context.Background(), "city at night", "dev", "16:9")
		require.NoError(t, err)
		assert.Equal(t, ModelDev, runner.gotRef)
		assert.Equal(t, "16:9", runner.gotInput["aspect_ratio"])
		assert.Equal(t, 3.5, runner.gotInput["guidance"])
		assert.Equal(t, 28, runner.gotInput["num_inference_steps"])
	})

	t.Run("empty prompt rejected", func(t *testing.T) {
		gen := NewGenerator(&fakeRunner{})

		_, err := gen.GenerateArt(context.Background(), "", "schnell", "")
		assert.Error(t, err)
	})
}

func TestGenerateQRArt(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		runner := &fakeRunner{output: []interface{}{map[string]interface{}{"url": "https://cdn.example.com/qr.png"}}}
		gen := NewGenerator(runner)

		got, err := gen.GenerateQRArt(context.Background(), "https://example.com/p/Ab3xYz", "mountains", "", 0, 0)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/qr.png", got)
		assert.Equal(t, qrControlNetRef, runner.gotRef)
		assert.Equal(t, defaultNegativePrompt, runner.gotInput["negative_prompt"])
		assert.Equal(t, defaultQRStrength, runner.gotInput["qr_conditioning_scale"])
		assert.NotZero(t, runner.gotInput["seed"])
	})

	t.Run("strength clamped to range", func(t *testing.T) {
		tests := []struct {
			name string
			in   float64
			want float64
		}{
			{"below minimum", 0.1, 0.8},
			{"above maximum", 9, 2.5},
			{"in range", 1.2, 1.2},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				runner := &fakeRunner{output: "https://cdn.example.com/qr.png"}
				gen := NewGenerator(runner)

				_, err := gen.GenerateQRArt(context.Background(), "https://example.com", "art", "", tt.in, 7)
				require.NoError(t, err)
				assert.Equal(t, tt.want, runner.gotInput["qr_conditioning_scale"])
			})
		}
	})

	t.Run("explicit seed passes through", func(t *testing.T) {
		runner := &fakeRunner{output: "https://cdn.example.com/qr.png"}
		gen := NewGenerator(runner)

		_, err := gen.GenerateQRArt(context.Background(), "https://example.com", "art", "", 0, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(42), runner.gotInput["seed"])
	})

	t.Run("missing url rejected", func(t *testing.T) {
		gen := NewGenerator(&fakeRunner{})

		_, err := gen.GenerateQRArt(context.Background(), "", "art", "", 0, 0)
		assert.Error(t, err)
	})
}

func TestExtractImageURL(t *testing.T) {
	parsed, _ := url.Parse("https://cdn.example.com/file.png")

	tests := []struct {
		name    string
		output  interface{}
		want    string
		wantErr bool
	}{
		{name: "plain string", output: "https://x/a.png", want: "https://x/a.png"},
		{name: "list of strings", output: []interface{}{"https://x/a.png", "https://x/b.png"}, want: "https://x/a.png"},
		{name: "list with url object", output: []interface{}{map[string]interface{}{"url": "https://x/a.png"}}, want: "https://x/a.png"},
		{name: "list with href object", output: []interface{}{map[string]interface{}{"href": "https://x/a.png"}}, want: "https://x/a.png"},
		{name: "url preferred over href", output: map[string]interface{}{"url": "https://x/u.png", "href": "https://x/h.png"}, want: "https://x/u.png"},
		{name: "stringer with http form", output: parsed, want: "https://cdn.example.com/file.png"},
		{name: "stringer without http form", output: notAURL{}, wantErr: true},
		{name: "object without url fields", output: map[string]interface{}{"id": "abc"}, wantErr: true},
		{name: "empty list", output: []interface{}{}, wantErr: true},
		{name: "empty string", output: "", wantErr: true},
		{name: "nil", output: nil, wantErr: true},
		{name: "numeric", output: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractImageURL(tt.output)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrNoImageURL)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type notAURL struct{}

func (notAURL) String() string { return "[object Object]" }
