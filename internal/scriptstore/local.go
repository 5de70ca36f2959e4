// Package scriptstore implements the local replica: a directory of script
// files plus a JSON metadata document tracking each script's synced version.
package scriptstore

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/flock"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/scriptsmith/scriptsync/internal/scriptmeta"
	"github.com/scriptsmith/scriptsync/internal/utils"
)

const hashCacheSize = 256

type hashCacheEntry struct {
	size    int64
	modTime time.Time
	hash    string
}

// Local is the filesystem-backed script store. Single in-process mutator;
// the flock on the metadata file only guards against a concurrent second
// CLI invocation.
type Local struct {
	dir       string
	metaPath  string
	metaLock  *flock.Flock
	hashCache *lru.Cache[string, hashCacheEntry]
}

func NewLocal(dir string) (*Local, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("create scripts dir: %w", err)
	}

	cache, err := lru.New[string, hashCacheEntry](hashCacheSize)
	if err != nil {
		return nil, err
	}

	metaPath := filepath.Join(dir, scriptmeta.LocalMetadataFile)
	return &Local{
		dir:       dir,
		metaPath:  metaPath,
		metaLock:  flock.New(metaPath + ".lock"),
		hashCache: cache,
	}, nil
}

func (l *Local) Dir() string {
	return l.dir
}

func (l *Local) ScriptPath(name string) string {
	return filepath.Join(l.dir, name+scriptmeta.ScriptExt)
}

// LoadMetadata reads the local metadata document. It fails soft: an absent
// or malformed file yields an empty document so a fresh checkout still
// syncs. Malformed contents are logged, never surfaced.
func (l *Local) LoadMetadata() scriptmeta.MetadataDocument {
	data, err := os.ReadFile(l.metaPath)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("local metadata unreadable, starting empty", "path", l.metaPath, "error", err)
		}
		return scriptmeta.MetadataDocument{}
	}

	doc, err := scriptmeta.UnmarshalMetadata(data)
	if err != nil {
		slog.Warn("local metadata malformed, starting empty", "path", l.metaPath, "error", err)
		return scriptmeta.MetadataDocument{}
	}
	return doc
}

// SaveMetadata persists the metadata document, last write wins.
func (l *Local) SaveMetadata(doc scriptmeta.MetadataDocument) error {
	locked, err := l.metaLock.TryLock()
	if err != nil {
		return fmt.Errorf("lock metadata: %w", err)
	}
	if !locked {
		return fmt.Errorf("metadata file %s is locked by another scriptsync run", l.metaPath)
	}
	defer l.metaLock.Unlock()

	data, err := doc.Marshal()
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	if err := os.WriteFile(l.metaPath, data, 0o644); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	return nil
}

func (l *Local) HasScript(name string) bool {
	return utils.FileExists(l.ScriptPath(name))
}

func (l *Local) ReadScript(name string) (string, error) {
	data, err := os.ReadFile(l.ScriptPath(name))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (l *Local) WriteScript(name, content string) error {
	path := l.ScriptPath(name)
	if err := utils.EnsureParent(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return err
	}
	l.hashCache.Remove(name)
	return nil
}

// HashScript returns the content hash of the named script. Unchanged files
// (same size and mtime as the cached entry) skip rehashing, so repeated
// status/pull runs stay cheap.
func (l *Local) HashScript(name string) (string, error) {
	path := l.ScriptPath(name)
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}

	if entry, ok := l.hashCache.Get(name); ok {
		if entry.size == info.Size() && entry.modTime.Equal(info.ModTime()) {
			return entry.hash, nil
		}
	}

	content, err := l.ReadScript(name)
	if err != nil {
		return "", err
	}

	hash := scriptmeta.ContentHash(content)
	l.hashCache.Add(name, hashCacheEntry{
		size:    info.Size(),
		modTime: info.ModTime(),
		hash:    hash,
	})
	return hash, nil
}

// ListScripts enumerates the name stems of all script files in the store,
// sorted for stable output.
func (l *Local) ListScripts() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), scriptmeta.ScriptExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), scriptmeta.ScriptExt))
	}
	sort.Strings(names)
	return names, nil
}
