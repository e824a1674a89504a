package errors_test

import (
	"fmt"

	"github.com/agentstation/modelcaps/pkg/errors"
)

// Example demonstrates basic error creation and checking.
func Example() {
	err := &errors.NotFoundError{
		Resource: "model",
		ID:       "gpt-5",
	}

	if errors.IsNotFound(err) {
		fmt.Println("Resource not found")
	}

	// Output: Resource not found
}

// Example_fetchError shows how a failed catalog download is classified.
func Example_fetchError() {
	cause := errors.NewAPIError("openrouter", 503, "503 Service Unavailable")
	err := errors.NewFetchError("openrouter", "https://openrouter.ai/api/v1/models", cause)

	fmt.Println(errors.IsFetchFailure(err), err.Kind, errors.IsProviderUnavailable(err))

	// Output: true status true
}
