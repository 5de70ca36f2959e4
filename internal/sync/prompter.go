package sync

import (
	"github.com/scriptsmith/scriptsync/internal/scriptmeta"
)

// Prompter is the operator-interaction capability the drivers depend on.
// The drivers never render UI themselves; interactive and non-interactive
// implementations live with the CLI.
type Prompter interface {
	// SelectScripts returns the subset of items to act on. action is
	// "pull" or "push", for display only.
	SelectScripts(action string, items []Item) ([]Item, error)

	// ConfirmConflict asks whether a conflicting script should be applied
	// anyway. Conflicts are never applied without this explicit yes.
	ConfirmConflict(item Item) (bool, error)

	// PickType asks for the type of a script being published for the first
	// time. The answer is immutable afterwards.
	PickType(name string) (scriptmeta.ScriptType, error)

	// PickBump asks which version component to bump when publishing name,
	// currently at version current.
	PickBump(name string, current scriptmeta.Version) (scriptmeta.BumpKind, error)
}

// AutoPrompter answers every prompt from configuration, for --yes runs and
// scripted use. Conflicts are applied only when ApplyConflicts is set.
type AutoPrompter struct {
	ApplyConflicts bool
	DefaultType    scriptmeta.ScriptType
	DefaultBump    scriptmeta.BumpKind
}

func (a *AutoPrompter) SelectScripts(action string, items []Item) ([]Item, error) {
	return items, nil
}

func (a *AutoPrompter) ConfirmConflict(item Item) (bool, error) {
	return a.ApplyConflicts, nil
}

func (a *AutoPrompter) PickType(name string) (scriptmeta.ScriptType, error) {
	if a.DefaultType.Valid() {
		return a.DefaultType, nil
	}
	return scriptmeta.TypeScript, nil
}

func (a *AutoPrompter) PickBump(name string, current scriptmeta.Version) (scriptmeta.BumpKind, error) {
	if a.DefaultBump != "" {
		return a.DefaultBump, nil
	}
	return scriptmeta.BumpPatch, nil
}

var _ Prompter = (*AutoPrompter)(nil)
