package sync

import (
	"context"

	"github.com/scriptsmith/scriptsync/internal/scriptmeta"
)

// Remote is the repository-side replica the drivers talk to.
// *githubsdk.Client satisfies it. Missing files must be reported with
// githubsdk.ErrFileNotFound so the drivers can tell "create" from "failed".
type Remote interface {
	GetFile(ctx context.Context, path string) ([]byte, string, error)
	PutFile(ctx context.Context, path string, content []byte, message, sha string) (string, error)
	GetMetadata(ctx context.Context) (scriptmeta.MetadataDocument, string, error)
	PutMetadata(ctx context.Context, doc scriptmeta.MetadataDocument, sha string) (string, error)
}

// LocalStore is the filesystem-side replica. *scriptstore.Local satisfies it.
type LocalStore interface {
	LocalContent
	LoadMetadata() scriptmeta.MetadataDocument
	SaveMetadata(doc scriptmeta.MetadataDocument) error
	ReadScript(name string) (string, error)
	WriteScript(name, content string) error
}
