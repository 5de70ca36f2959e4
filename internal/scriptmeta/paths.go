package scriptmeta

import "fmt"

const (
	// RemoteMetadataPath is the fixed location of the metadata document in
	// the remote repository.
	RemoteMetadataPath = "data/scripts.json"

	// LocalMetadataFile is the metadata filename inside the local scripts
	// directory.
	LocalMetadataFile = "scripts.json"

	// ScriptExt is the file extension shared by all synced scripts.
	ScriptExt = ".js"
)

// RemotePath returns the repository path for a script's content, e.g.
// "widgets/Weather.js". Both sync directions must build remote paths through
// this function; the pluralized type directory is the canonical layout.
func RemotePath(t ScriptType, name string) string {
	return fmt.Sprintf("%ss/%s%s", t, name, ScriptExt)
}
