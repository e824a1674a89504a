package transport

import (
	"io"
	"net/http"
	"strings"

	"github.com/agentstation/modelcaps/pkg/errors"
	"github.com/agentstation/modelcaps/pkg/logging"
)

// maxErrorBody caps how much of a failed response is echoed into the error.
const maxErrorBody = 512

// ReadBody reads and closes resp.Body. Any non-2xx status becomes an
// *errors.APIError carrying the status code and a trimmed body excerpt.
func ReadBody(resp *http.Response, source string) ([]byte, error) {
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.Warn().Err(err).Str("source", source).Msg("failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		endpoint := ""
		if resp.Request != nil && resp.Request.URL != nil {
			endpoint = resp.Request.URL.String()
		}
		return nil, &errors.APIError{
			Provider:   source,
			StatusCode: resp.StatusCode,
			Endpoint:   endpoint,
			Message:    statusMessage(resp.Status, body),
		}
	}

	return body, nil
}

func statusMessage(status string, body []byte) string {
	excerpt := strings.TrimSpace(string(body))
	if len(excerpt) > maxErrorBody {
		excerpt = excerpt[:maxErrorBody] + "..."
	}
	if excerpt == "" {
		return status
	}
	return status + ": " + excerpt
}
