package sync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/scriptsmith/scriptsync/internal/scriptmeta"
)

// Puller applies remote state to the local replica.
type Puller struct {
	store    LocalStore
	remote   Remote
	prompter Prompter
}

func NewPuller(store LocalStore, remote Remote, prompter Prompter) *Puller {
	return &Puller{
		store:    store,
		remote:   remote,
		prompter: prompter,
	}
}

// Run executes one pull batch. Metadata load or classification failures
// abort before any write; per-script download failures are isolated and
// collected in the summary. The local metadata document is persisted once,
// after the batch, covering only scripts that completed.
func (p *Puller) Run(ctx context.Context) (*Summary, error) {
	localMeta := p.store.LoadMetadata()

	remoteMeta, _, err := p.remote.GetMetadata(ctx)
	if err != nil {
		// also covers a missing remote document: pulling against absent
		// remote state is not a create case
		return nil, fmt.Errorf("load remote metadata: %w", err)
	}

	result, err := ClassifyPull(localMeta, remoteMeta, p.store)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	for _, it := range result.ByClass(ClassSkip) {
		summary.skipped(it.Name)
	}

	selected, err := p.prompter.SelectScripts("pull", result.ByClass(ClassNew, ClassUpdate))
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
		if err := p.pullOne(ctx, it, localMeta, now); err != nil {
			slog.Error("pull failed", "script", it.Name, "error", err)
			summary.failed(it.Name, err)
			continue
		}
		slog.Info("pulled", "script", it.Name, "version", it.Remote.Version, "reason", it.Reason)
		summary.applied(it.Name)
	}

	if len(summary.Applied) > 0 {
		if err := p.store.SaveMetadata(localMeta); err != nil {
			return summary, fmt.Errorf("persist local metadata: %w", err)
		}
	}

	return summary, nil
}

func (p *Puller) pullOne(ctx context.Context, it Item, localMeta scriptmeta.MetadataDocument, now time.Time) error {
	rec := it.Remote
	content, _, err := p.remote.GetFile(ctx, scriptmeta.RemotePath(rec.Type, it.Name))
	if err != nil {
		return err
	}

	if err := p.store.WriteScript(it.Name, string(content)); err != nil {
		return err
	}

	// hash is recomputed from what was written, not copied from the remote
	// record, so a stale remote hash surfaces on the next run instead of
	// being laundered into the local document
	localMeta[it.Name] = &scriptmeta.ScriptRecord{
		Version:     rec.Version,
		Type:        rec.Type,
		Hash:        scriptmeta.ContentHash(string(content)),
		LastUpdated: now,
	}
	return nil
}
