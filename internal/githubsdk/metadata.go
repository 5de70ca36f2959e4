package githubsdk

import (
	"context"
	"fmt"

	"github.com/scriptsmith/scriptsync/internal/scriptmeta"
)

// GetMetadata fetches the remote metadata document and its revision. Decode
// failures are hard errors: unlike the local document there is no safe
// "treat as empty" fallback, that would re-publish everything. A missing
// document is reported as ErrFileNotFound so first-publish flows can start
// from an empty one deliberately.
func (g *Client) GetMetadata(ctx context.Context) (scriptmeta.MetadataDocument, string, error) {
	data, sha, err := g.GetFile(ctx, scriptmeta.RemoteMetadataPath)
	if err != nil {
		return nil, "", err
	}

	doc, err := scriptmeta.UnmarshalMetadata(data)
	if err != nil {
		return nil, "", fmt.Errorf("remote metadata malformed: %w", err)
	}
	return doc, sha, nil
}

// PutMetadata writes the metadata document back with the revision observed
// by GetMetadata (empty sha creates it).
func (g *Client) PutMetadata(ctx context.Context, doc scriptmeta.MetadataDocument, sha string) (string, error) {
	data, err := doc.Marshal()
	if err != nil {
		return "", fmt.Errorf("marshal metadata: %w", err)
	}
	return g.PutFile(ctx, scriptmeta.RemoteMetadataPath, data, "scriptsync: update script metadata", sha)
}
