// Package sync implements the reconciliation core: classifying every script
// against the local and remote metadata documents, and the pull/push drivers
// that act on the classification.
package sync

import (
	"fmt"
	"sort"

	"github.com/scriptsmith/scriptsync/internal/scriptmeta"
)

// Classification is the single bucket assigned to a script name. Exactly one
// classification is produced per processed name.
type Classification string

const (
	// ClassNew: present on the source side only, clean to apply.
	ClassNew Classification = "new"
	// ClassUpdate: source strictly newer with no drift on the target side.
	ClassUpdate Classification = "update"
	// ClassConflict: divergence that a clean apply cannot explain. Never
	// auto-applied.
	ClassConflict Classification = "conflict"
	// ClassSkip: nothing to do, identical content or missing input.
	ClassSkip Classification = "skip"
	// ClassLocalOnly: present only locally, push-side publish candidate.
	ClassLocalOnly Classification = "local-only"
)

// Item is one script's classification with the records that produced it.
type Item struct {
	Name      string
	Class     Classification
	Reason    string
	Local     *scriptmeta.ScriptRecord
	Remote    *scriptmeta.ScriptRecord
	LocalHash string // hash of the current local file content, empty if absent
}

// Result holds the classification of every processed name.
type Result struct {
	Items []Item
}

// ByClass returns the items matching any of the given classes, preserving
// name order.
func (r *Result) ByClass(classes ...Classification) []Item {
	var out []Item
	for _, it := range r.Items {
		for _, c := range classes {
			if it.Class == c {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// LocalContent is the live view of local script files the classifier reads.
// *scriptstore.Local satisfies it.
type LocalContent interface {
	HasScript(name string) bool
	HashScript(name string) (string, error)
	ListScripts() ([]string, error)
}

// ClassifyPull classifies every name in remoteMeta for a remote-to-local
// sync. Precedence is fixed: local existence, then content equality (a
// byte-identical script is never an update or conflict, whatever its version
// label says), then the version comparison disambiguated by whether the
// local file drifted from its own last recorded hash.
func ClassifyPull(localMeta, remoteMeta scriptmeta.MetadataDocument, content LocalContent) (*Result, error) {
	result := &Result{}

	for _, name := range sortedKeys(remoteMeta) {
		remote := remoteMeta[name]
		local := localMeta[name]

		if !content.HasScript(name) {
			result.add(Item{Name: name, Class: ClassNew, Reason: "not present locally", Local: local, Remote: remote})
			continue
		}

		gen, err := content.HashScript(name)
		if err != nil {
			return nil, fmt.Errorf("hash %s: %w", name, err)
		}

		if gen == remote.Hash {
			result.add(Item{Name: name, Class: ClassSkip, Reason: "identical content", Local: local, Remote: remote, LocalHash: gen})
			continue
		}

		if local == nil {
			result.add(Item{Name: name, Class: ClassConflict, Reason: "untracked local file differs from remote", Remote: remote, LocalHash: gen})
			continue
		}

		cmp, err := compareRecordVersions(name, remote, local)
		if err != nil {
			return nil, err
		}

		item := Item{Name: name, Local: local, Remote: remote, LocalHash: gen}
		switch {
		case cmp > 0 && gen != local.Hash:
			item.Class, item.Reason = ClassConflict, "remote newer version + local edits"
		case cmp > 0:
			item.Class, item.Reason = ClassUpdate, "remote newer version"
		case cmp == 0:
			item.Class, item.Reason = ClassConflict, "same version but different content"
		default:
			item.Class, item.Reason = ClassConflict, "local newer version + content differs"
		}
		result.add(item)
	}

	return result, nil
}

// ClassifyPush mirrors ClassifyPull with the replica roles swapped,
// classifying the union of tracked and on-disk local scripts. Local edits
// relative to the local record are not drift here, they are the thing being
// published: same version plus a dirty local file classifies as an update
// (the driver bumps past the remote version), while two clean records
// sharing a version with different content is a genuine conflict.
func ClassifyPush(localMeta, remoteMeta scriptmeta.MetadataDocument, content LocalContent) (*Result, error) {
	names, err := pushNames(localMeta, content)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, name := range names {
		local := localMeta[name]
		remote := remoteMeta[name]

		if !content.HasScript(name) {
			result.add(Item{Name: name, Class: ClassSkip, Reason: "local file missing", Local: local, Remote: remote})
			continue
		}

		gen, err := content.HashScript(name)
		if err != nil {
			return nil, fmt.Errorf("hash %s: %w", name, err)
		}

		if remote == nil {
			result.add(Item{Name: name, Class: ClassLocalOnly, Reason: "never published", Local: local, LocalHash: gen})
			continue
		}

		if gen == remote.Hash {
			result.add(Item{Name: name, Class: ClassSkip, Reason: "identical content", Local: local, Remote: remote, LocalHash: gen})
			continue
		}

		if local == nil {
			result.add(Item{Name: name, Class: ClassConflict, Reason: "untracked local file differs from remote", Remote: remote, LocalHash: gen})
			continue
		}

		cmp, err := compareRecordVersions(name, local, remote)
		if err != nil {
			return nil, err
		}

		item := Item{Name: name, Local: local, Remote: remote, LocalHash: gen}
		switch {
		case cmp > 0:
			item.Class, item.Reason = ClassUpdate, "local newer version"
		case cmp == 0 && gen != local.Hash:
			item.Class, item.Reason = ClassUpdate, "local edits pending publish"
		case cmp == 0:
			item.Class, item.Reason = ClassConflict, "same version but different content"
		default:
			item.Class, item.Reason = ClassConflict, "remote newer version + content differs"
		}
		result.add(item)
	}

	return result, nil
}

func (r *Result) add(item Item) {
	r.Items = append(r.Items, item)
}

// compareRecordVersions orders a's version against b's. A malformed version
// string is a hard error for the whole classification, never a silent 0.0.0.
func compareRecordVersions(name string, a, b *scriptmeta.ScriptRecord) (int, error) {
	av, err := scriptmeta.ParseVersion(a.Version)
	if err != nil {
		return 0, fmt.Errorf("script %s: %w", name, err)
	}
	bv, err := scriptmeta.ParseVersion(b.Version)
	if err != nil {
		return 0, fmt.Errorf("script %s: %w", name, err)
	}
	return av.Compare(bv), nil
}

func pushNames(localMeta scriptmeta.MetadataDocument, content LocalContent) ([]string, error) {
	onDisk, err := content.ListScripts()
	if err != nil {
		return nil, fmt.Errorf("list local scripts: %w", err)
	}

	seen := make(map[string]struct{}, len(localMeta)+len(onDisk))
	for name := range localMeta {
		seen[name] = struct{}{}
	}
	for _, name := range onDisk {
		seen[name] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func sortedKeys(doc scriptmeta.MetadataDocument) []string {
	names := make([]string, 0, len(doc))
	for name := range doc {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
