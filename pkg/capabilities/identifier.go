package capabilities

import "strings"

// ParseModelID splits a provider-qualified raw id into its provider and
// canonical model identifier.
//
// The provider is everything before the first "/". The canonical id is the
// remainder with any ":variant" tag removed:
//
//	"openai/gpt-4:free"  -> ("openai", "gpt-4")
//	"meta-llama/llama-3" -> ("meta-llama", "llama-3")
//
// An id without "/" is its own provider and its own remainder.
func ParseModelID(raw string) (provider, id string) {
	provider, remainder, found := strings.Cut(raw, "/")
	if !found {
		remainder = raw
	}
	id, _, _ = strings.Cut(remainder, ":")
	return provider, id
}
