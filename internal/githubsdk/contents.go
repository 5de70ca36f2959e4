package githubsdk

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type contentResponse struct {
	Type     string `json:"type"`
	Encoding string `json:"encoding"`
	SHA      string `json:"sha"`
	Content  string `json:"content"`
}

type putContentRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Branch  string `json:"branch"`
	SHA     string `json:"sha,omitempty"`
}

type putContentResponse struct {
	Content struct {
		SHA string `json:"sha"`
	} `json:"content"`
}

// GetFile fetches a file's content and its current blob SHA. A missing path
// is reported as ErrFileNotFound. Reads are retried at the transport level;
// they are safe to repeat.
func (g *Client) GetFile(ctx context.Context, path string) ([]byte, string, error) {
	var res contentResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetRetryCount(2).
		SetRetryFixedInterval(1*time.Second).
		SetQueryParam("ref", g.cfg.Branch).
		SetSuccessResult(&res).
		SetErrorResult(&APIError{}).
		Get(g.contentsURL(path))

	if err == nil && resp.StatusCode == http.StatusNotFound {
		return nil, "", fmt.Errorf("%s: %w", path, ErrFileNotFound)
	}
	if err := handleAPIError(resp, err, "get "+path); err != nil {
		return nil, "", err
	}

	content, err := decodeContent(&res)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", path, err)
	}
	return content, res.SHA, nil
}

// PutFile creates or updates a file. An empty sha means "create if absent";
// a non-empty sha is the revision observed by a prior read, and a mismatch
// surfaces as *RevisionConflictError. Writes are a single attempt, never
// retried by the SDK.
func (g *Client) PutFile(ctx context.Context, path string, content []byte, message, sha string) (string, error) {
	body := &putContentRequest{
		Message: message,
		Content: base64.StdEncoding.EncodeToString(content),
		Branch:  g.cfg.Branch,
		SHA:     sha,
	}

	var res putContentResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(body).
		SetSuccessResult(&res).
		SetErrorResult(&APIError{}).
		Put(g.contentsURL(path))

	if err == nil && isRevisionConflict(resp.StatusCode, sha) {
		return "", &RevisionConflictError{Path: path, ExpectedSHA: sha}
	}
	if err := handleAPIError(resp, err, "put "+path); err != nil {
		return "", err
	}

	return res.Content.SHA, nil
}

// isRevisionConflict recognizes the statuses GitHub uses for an expected-SHA
// mismatch: 409 always, and 422 when we supplied a sha (422 without one is a
// plain validation failure).
func isRevisionConflict(status int, sha string) bool {
	if status == http.StatusConflict {
		return true
	}
	return status == http.StatusUnprocessableEntity && sha != ""
}

func decodeContent(res *contentResponse) ([]byte, error) {
	if res.Encoding != "" && res.Encoding != "base64" {
		return nil, fmt.Errorf("unexpected encoding %q", res.Encoding)
	}
	// the contents api wraps base64 at 60 chars
	return base64.StdEncoding.DecodeString(strings.ReplaceAll(res.Content, "\n", ""))
}
