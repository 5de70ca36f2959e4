package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/scriptsmith/scriptsync/internal/githubsdk"
	"github.com/scriptsmith/scriptsync/internal/scriptmeta"
)

// Pusher publishes local scripts to the remote replica.
type Pusher struct {
	store    LocalStore
	remote   Remote
	prompter Prompter
}

func NewPusher(store LocalStore, remote Remote, prompter Prompter) *Pusher {
	return &Pusher{
		store:    store,
		remote:   remote,
		prompter: prompter,
	}
}

// Run executes one push batch. Script files are uploaded one by one with the
// revision observed beforehand; the metadata documents (remote then local)
// are written last and cover only the scripts whose upload succeeded.
func (p *Pusher) Run(ctx context.Context) (*Summary, error) {
	localMeta := p.store.LoadMetadata()

	remoteMeta, metaSHA, err := p.remote.GetMetadata(ctx)
	if errors.Is(err, githubsdk.ErrFileNotFound) {
		// first publish into an empty repository
		remoteMeta, metaSHA = scriptmeta.MetadataDocument{}, ""
	} else if err != nil {
		return nil, fmt.Errorf("load remote metadata: %w", err)
	}

	result, err := ClassifyPush(localMeta, remoteMeta, p.store)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	for _, it := range result.ByClass(ClassSkip) {
		summary.skipped(it.Name)
	}

	selected, err := p.prompter.SelectScripts("push", result.ByClass(ClassLocalOnly, ClassUpdate))
	if err != nil {
		return nil, err
	}

	for _, it := range result.ByClass(ClassConflict) {
		ok, err := p.prompter.ConfirmConflict(it)
		if err != nil {
			return nil, err
		}
		if !ok {
			slog.Warn("conflict skipped", "script", it.Name, "reason", it.Reason)
			summary.skipped(it.Name)
			continue
		}
		selected = append(selected, it)
	}

	now := time.Now().UTC()
	for _, it := range selected {
		rec, err := p.pushOne(ctx, it, now)
		if err != nil {
			var conflictErr *githubsdk.RevisionConflictError
			if errors.As(err, &conflictErr) {
				slog.Error("push rejected, remote changed since read - pull and retry", "script", it.Name)
			} else {
				slog.Error("push failed", "script", it.Name, "error", err)
			}
			summary.failed(it.Name, err)
			continue
		}

		remoteMeta[it.Name] = rec
		cp := *rec
		localMeta[it.Name] = &cp
		slog.Info("pushed", "script", it.Name, "version", rec.Version, "type", rec.Type)
		summary.applied(it.Name)
	}

	if len(summary.Applied) > 0 {
		if _, err := p.remote.PutMetadata(ctx, remoteMeta, metaSHA); err != nil {
			return summary, fmt.Errorf("persist remote metadata: %w", err)
		}
		if err := p.store.SaveMetadata(localMeta); err != nil {
			return summary, fmt.Errorf("persist local metadata: %w", err)
		}
	}

	return summary, nil
}

func (p *Pusher) pushOne(ctx context.Context, it Item, now time.Time) (*scriptmeta.ScriptRecord, error) {
	content, err := p.store.ReadScript(it.Name)
	if err != nil {
		return nil, err
	}

	typ, err := p.scriptType(it)
	if err != nil {
		return nil, err
	}

	next, err := p.nextVersion(it)
	if err != nil {
		return nil, err
	}

	path := scriptmeta.RemotePath(typ, it.Name)
	sha, err := p.observedRevision(ctx, it, path)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("scriptsync: publish %s v%s", it.Name, next)
	if _, err := p.remote.PutFile(ctx, path, []byte(content), message, sha); err != nil {
		return nil, err
	}

	return &scriptmeta.ScriptRecord{
		Version:     next.String(),
		Type:        typ,
		Hash:        scriptmeta.ContentHash(content),
		LastUpdated: now,
	}, nil
}

// scriptType resolves a script's type: fixed by whichever record already has
// one, prompted exactly once for first publishes.
func (p *Pusher) scriptType(it Item) (scriptmeta.ScriptType, error) {
	if it.Remote != nil && it.Remote.Type.Valid() {
		return it.Remote.Type, nil
	}
	if it.Local != nil && it.Local.Type.Valid() {
		return it.Local.Type, nil
	}
	return p.prompter.PickType(it.Name)
}

// nextVersion bumps past whichever record is ahead. First publishes start at
// 1.0.0 without a prompt.
func (p *Pusher) nextVersion(it Item) (scriptmeta.Version, error) {
	if it.Local == nil && it.Remote == nil {
		return scriptmeta.Version{Major: 1}, nil
	}

	current := scriptmeta.Version{}
	for _, rec := range []*scriptmeta.ScriptRecord{it.Local, it.Remote} {
		if rec == nil {
			continue
		}
		v, err := scriptmeta.ParseVersion(rec.Version)
		if err != nil {
			return scriptmeta.Version{}, fmt.Errorf("script %s: %w", it.Name, err)
		}
		if v.Compare(current) > 0 {
			current = v
		}
	}

	kind, err := p.prompter.PickBump(it.Name, current)
	if err != nil {
		return scriptmeta.Version{}, err
	}
	return current.Bump(kind), nil
}

// observedRevision reads the current blob SHA for path so the upload carries
// it as the expected revision. Scripts the remote has never seen upload with
// no expected revision (create).
func (p *Pusher) observedRevision(ctx context.Context, it Item, path string) (string, error) {
	if it.Remote == nil {
		return "", nil
	}
	_, sha, err := p.remote.GetFile(ctx, path)
	if errors.Is(err, githubsdk.ErrFileNotFound) {
		// tracked in metadata but the blob is gone, recreate it
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return sha, nil
}
