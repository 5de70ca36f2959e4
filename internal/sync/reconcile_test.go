package sync

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptsmith/scriptsync/internal/scriptmeta"
)

// fakeContent models the live local files by name -> generated hash, so
// tests can state hashes directly the way the metadata records do.
type fakeContent map[string]string

func (f fakeContent) HasScript(name string) bool { _, ok := f[name]; return ok }

func (f fakeContent) HashScript(name string) (string, error) { return f[name], nil }

func (f fakeContent) ListScripts() ([]string, error) {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func record(version, hash string) *scriptmeta.ScriptRecord {
	return &scriptmeta.ScriptRecord{Version: version, Type: scriptmeta.TypeWidget, Hash: hash}
}

func classifyOne(t *testing.T, local, remote scriptmeta.MetadataDocument, content fakeContent) Item {
	t.Helper()
	result, err := ClassifyPull(local, remote, content)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	return result.Items[0]
}

func TestClassifyPull_New(t *testing.T) {
	// remote has Foo, no local file
	item := classifyOne(t,
		scriptmeta.MetadataDocument{},
		scriptmeta.MetadataDocument{"Foo": record("1.0.0", "a1")},
		fakeContent{})

	assert.Equal(t, ClassNew, item.Class)
	assert.Equal(t, "Foo", item.Name)
}

func TestClassifyPull_CleanUpdate(t *testing.T) {
	// local record matches the file, remote strictly newer
	item := classifyOne(t,
		scriptmeta.MetadataDocument{"Foo": record("1.0.0", "a1")},
		scriptmeta.MetadataDocument{"Foo": record("1.1.0", "b2")},
		fakeContent{"Foo": "a1"})

	assert.Equal(t, ClassUpdate, item.Class)
	assert.Equal(t, "remote newer version", item.Reason)
}

func TestClassifyPull_ConflictFromLocalEdit(t *testing.T) {
	// local file drifted from its own record, remote newer
	item := classifyOne(t,
		scriptmeta.MetadataDocument{"Foo": record("1.0.0", "a1")},
		scriptmeta.MetadataDocument{"Foo": record("1.1.0", "b2")},
		fakeContent{"Foo": "c3"})

	assert.Equal(t, ClassConflict, item.Class)
	assert.Equal(t, "remote newer version + local edits", item.Reason)
}

func TestClassifyPull_IdenticalContentSkipsWhateverTheVersion(t *testing.T) {
	// content equality wins before any version comparison
	item := classifyOne(t,
		scriptmeta.MetadataDocument{"Foo": record("1.0.0", "a1")},
		scriptmeta.MetadataDocument{"Foo": record("2.0.0", "a1")},
		fakeContent{"Foo": "a1"})

	assert.Equal(t, ClassSkip, item.Class)
	assert.Equal(t, "identical content", item.Reason)
}

func TestClassifyPull_SameVersionDivergedContent(t *testing.T) {
	item := classifyOne(t,
		scriptmeta.MetadataDocument{"Foo": record("1.0.0", "a1")},
		scriptmeta.MetadataDocument{"Foo": record("1.0.0", "z9")},
		fakeContent{"Foo": "a1"})

	assert.Equal(t, ClassConflict, item.Class)
	assert.Equal(t, "same version but different content", item.Reason)
}

func TestClassifyPull_LocalAheadDivergedContent(t *testing.T) {
	item := classifyOne(t,
		scriptmeta.MetadataDocument{"Foo": record("2.0.0", "a1")},
		scriptmeta.MetadataDocument{"Foo": record("1.0.0", "z9")},
		fakeContent{"Foo": "a1"})

	assert.Equal(t, ClassConflict, item.Class)
	assert.Equal(t, "local newer version + content differs", item.Reason)
}

func TestClassifyPull_UntrackedLocalFile(t *testing.T) {
	// file on disk, no local record, content differs from remote
	item := classifyOne(t,
		scriptmeta.MetadataDocument{},
		scriptmeta.MetadataDocument{"Foo": record("1.0.0", "a1")},
		fakeContent{"Foo": "c3"})

	assert.Equal(t, ClassConflict, item.Class)
}

func TestClassifyPull_MalformedVersionIsAnError(t *testing.T) {
	_, err := ClassifyPull(
		scriptmeta.MetadataDocument{"Foo": record("1.0", "a1")},
		scriptmeta.MetadataDocument{"Foo": record("1.1.0", "b2")},
		fakeContent{"Foo": "c3"})

	require.Error(t, err)
	assert.ErrorIs(t, err, scriptmeta.ErrMalformedVersion)
	assert.Contains(t, err.Error(), "Foo")
}

func TestClassifyPull_Totality(t *testing.T) {
	// every remote name gets exactly one classification
	remote := scriptmeta.MetadataDocument{
		"New":      record("1.0.0", "n1"),
		"Update":   record("2.0.0", "u2"),
		"Skip":     record("1.5.0", "s1"),
		"Conflict": record("1.0.0", "x1"),
	}
	local := scriptmeta.MetadataDocument{
		"Update":   record("1.0.0", "u1"),
		"Skip":     record("1.0.0", "s1"),
		"Conflict": record("1.0.0", "c1"),
	}
	content := fakeContent{"Update": "u1", "Skip": "s1", "Conflict": "c1"}

	result, err := ClassifyPull(local, remote, content)
	require.NoError(t, err)
	require.Len(t, result.Items, len(remote))

	seen := map[string]Classification{}
	for _, it := range result.Items {
		_, dup := seen[it.Name]
		require.False(t, dup, "name %s classified twice", it.Name)
		seen[it.Name] = it.Class
	}
	assert.Equal(t, ClassNew, seen["New"])
	assert.Equal(t, ClassUpdate, seen["Update"])
	assert.Equal(t, ClassSkip, seen["Skip"])
	assert.Equal(t, ClassConflict, seen["Conflict"])
}

func TestClassifyPush_LocalOnly(t *testing.T) {
	result, err := ClassifyPush(
		scriptmeta.MetadataDocument{},
		scriptmeta.MetadataDocument{},
		fakeContent{"Fresh": "f1"})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)

	assert.Equal(t, ClassLocalOnly, result.Items[0].Class)
	assert.Equal(t, "Fresh", result.Items[0].Name)
}

func TestClassifyPush_IdenticalContent(t *testing.T) {
	result, err := ClassifyPush(
		scriptmeta.MetadataDocument{"Foo": record("1.0.0", "a1")},
		scriptmeta.MetadataDocument{"Foo": record("2.0.0", "a1")},
		fakeContent{"Foo": "a1"})
	require.NoError(t, err)

	assert.Equal(t, ClassSkip, result.Items[0].Class)
}

func TestClassifyPush_LocalEditsPendingPublish(t *testing.T) {
	// same version on both sides, file drifted from the local record:
	// that is the normal "edited, now push with a bump" state
	result, err := ClassifyPush(
		scriptmeta.MetadataDocument{"Foo": record("1.0.0", "a1")},
		scriptmeta.MetadataDocument{"Foo": record("1.0.0", "a1")},
		fakeContent{"Foo": "c3"})
	require.NoError(t, err)

	assert.Equal(t, ClassUpdate, result.Items[0].Class)
	assert.Equal(t, "local edits pending publish", result.Items[0].Reason)
}

func TestClassifyPush_SameVersionCleanDivergence(t *testing.T) {
	// both records claim 1.0.0, both clean, content differs: conflict
	result, err := ClassifyPush(
		scriptmeta.MetadataDocument{"Foo": record("1.0.0", "a1")},
		scriptmeta.MetadataDocument{"Foo": record("1.0.0", "z9")},
		fakeContent{"Foo": "a1"})
	require.NoError(t, err)

	assert.Equal(t, ClassConflict, result.Items[0].Class)
}

func TestClassifyPush_RemoteAhead(t *testing.T) {
	result, err := ClassifyPush(
		scriptmeta.MetadataDocument{"Foo": record("1.0.0", "a1")},
		scriptmeta.MetadataDocument{"Foo": record("1.1.0", "b2")},
		fakeContent{"Foo": "a1"})
	require.NoError(t, err)

	assert.Equal(t, ClassConflict, result.Items[0].Class)
	assert.Equal(t, "remote newer version + content differs", result.Items[0].Reason)
}

func TestClassifyPush_TrackedFileMissing(t *testing.T) {
	result, err := ClassifyPush(
		scriptmeta.MetadataDocument{"Gone": record("1.0.0", "a1")},
		scriptmeta.MetadataDocument{},
		fakeContent{})
	require.NoError(t, err)

	assert.Equal(t, ClassSkip, result.Items[0].Class)
	assert.Equal(t, "local file missing", result.Items[0].Reason)
}

func TestResult_ByClass(t *testing.T) {
	r := &Result{Items: []Item{
		{Name: "A", Class: ClassNew},
		{Name: "B", Class: ClassSkip},
		{Name: "C", Class: ClassUpdate},
	}}

	got := r.ByClass(ClassNew, ClassUpdate)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Name)
	assert.Equal(t, "C", got[1].Name)
}
