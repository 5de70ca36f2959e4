package githubsdk

import (
	"errors"
	"fmt"

	"github.com/imroc/req/v3"
)

var (
	ErrNoRepo       = errors.New("sdk: repository owner/name missing")
	ErrNoToken      = errors.New("sdk: access token missing")
	ErrFileNotFound = errors.New("sdk: file not found")
)

// APIError is a non-2xx response from the GitHub API that is not a revision
// conflict.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %d - %s", e.StatusCode, e.Message)
}

// RevisionConflictError reports an optimistic-concurrency failure: the blob
// changed after we read its SHA. Distinct from generic write failures so the
// caller can re-read and recompute before any retry. The SDK itself never
// retries these.
type RevisionConflictError struct {
	Path        string
	ExpectedSHA string
}

func (e *RevisionConflictError) Error() string {
	return fmt.Sprintf("revision conflict on %s (expected sha %q)", e.Path, e.ExpectedSHA)
}

// handleAPIError folds the common transport-error / error-state checks.
func handleAPIError(resp *req.Response, requestErr error, operation string) error {
	if requestErr != nil {
		return fmt.Errorf("http request error: %s: %w", operation, requestErr)
	}

	// got a response, but the api returned an error
	if resp.IsErrorState() {
		if apiErr, ok := resp.ErrorResult().(*APIError); ok {
			apiErr.StatusCode = resp.StatusCode
			return fmt.Errorf("%s: %w", operation, apiErr)
		}
		return fmt.Errorf("api error: %s: %s", operation, resp.Status)
	}

	return nil
}
