// Package openrouter reads the public OpenRouter model listing
// (GET /api/v1/models). It exposes the subset of the record schema that
// modelcaps consumes and a client that fetches and decodes it.
package openrouter
