// Package ai implements the proxy to the upstream generative model: a thin
// Generator over the provider SDK plus an Assistant that composes the
// per-feature prompts.
package ai

import "context"

// GenerateRequest is a single stateless generation call. ImageBase64, when
// set, is sent alongside the prompt as an inline image block.
type GenerateRequest struct {
	System         string
	Prompt         string
	ImageBase64    string
	ImageMediaType string
}

// Generator performs one generation round-trip against the upstream
// provider. Implementations must honor ctx and return
// common.ErrUpstreamTimeout when the call deadline elapses.
type Generator interface {
	Generate(ctx context.Context, req *GenerateRequest) (string, error)
}
