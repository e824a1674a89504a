// Package capabilities turns raw catalog records into the compact
// model-capabilities table read by the frontend.
//
// The table maps a canonical model identifier (the raw id without its
// provider prefix and variant tag) to a Descriptor:
//
//	"gpt-4": {
//	  "provider": "openai",
//	  "name": "OpenAI: GPT-4",
//	  "description": "",
//	  "supports_image": false,
//	  "context_length": 8191,
//	  "inputs": ["text"],
//	  "outputs": ["text"]
//	}
package capabilities
