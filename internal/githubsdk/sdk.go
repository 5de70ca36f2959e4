// Package githubsdk is a minimal client for the GitHub repository contents
// API, covering exactly what script sync needs: per-path reads returning a
// revision marker (blob SHA) and create-or-update writes with an expected
// revision for optimistic concurrency.
package githubsdk

import (
	"fmt"

	"github.com/imroc/req/v3"

	"github.com/scriptsmith/scriptsync/internal/version"
)

const DefaultBaseURL = "https://api.github.com"

// Config carries everything the client needs. It is passed in explicitly at
// construction; the SDK never reads process-wide state.
type Config struct {
	Owner   string
	Repo    string
	Branch  string
	Token   string
	BaseURL string // defaults to DefaultBaseURL, override for tests
}

func (c *Config) validate() error {
	if c.Owner == "" || c.Repo == "" {
		return ErrNoRepo
	}
	if c.Token == "" {
		return ErrNoToken
	}
	if c.Branch == "" {
		c.Branch = "main"
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	return nil
}

// Client talks to one repository on one branch.
type Client struct {
	client *req.Client
	cfg    Config
}

func New(cfg Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	client := req.C().
		SetBaseURL(cfg.BaseURL).
		SetCommonBearerAuthToken(cfg.Token).
		SetCommonHeader("Accept", "application/vnd.github+json").
		SetCommonHeader("X-GitHub-Api-Version", "2022-11-28").
		SetUserAgent("scriptsync/" + version.Version).
		SetJsonMarshal(jsonMarshal).
		SetJsonUnmarshal(jsonUnmarshal)

	return &Client{
		client: client,
		cfg:    cfg,
	}, nil
}

func (c *Client) contentsURL(path string) string {
	return fmt.Sprintf("/repos/%s/%s/contents/%s", c.cfg.Owner, c.cfg.Repo, path)
}
