package object

// Hash is a 64-character hex-encoded SHA-256 digest.
type Hash string

// ObjectType identifies the kind of object stored.
type ObjectType string

const (
	TypeBlob   ObjectType = "blob"
	TypeTree   ObjectType = "tree"
	TypeCommit ObjectType = "commit"
)

const (
	// Tree mode constants compatible with Git's canonical mode strings.
	TreeModeDir  = "40000"
	TreeModeFile = "100644"
)

// Blob holds an opaque value.
type Blob struct {
	Data []byte
}

// TreeEntry is one entry in a tree object. A key entry carries a blob
// hash at mode 100644; a subtree entry carries a subtree hash at mode
// 40000. The core only ever builds flat trees of key entries, but the
// store model (and the diff engine) admits nesting.
type TreeEntry struct {
	Name        string
	IsDir       bool
	Mode        string
	BlobHash    Hash
	SubtreeHash Hash
}

// TreeObj holds a sorted list of tree entries.
type TreeObj struct {
	Entries []TreeEntry // sorted by Name
}

// Lookup returns the entry with the given name, scanning top-level
// entries only.
func (tr *TreeObj) Lookup(name string) (TreeEntry, bool) {
	for _, e := range tr.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return TreeEntry{}, false
}

// CommitObj is an immutable snapshot: one tree, zero or one parent.
// History is strictly linear; Parent is empty only for the first
// commit of a repository.
type CommitObj struct {
	TreeHash           Hash
	Parent             Hash // empty for a root commit
	Author             string
	Timestamp          int64
	Committer          string
	CommitterTimestamp int64
	Signature          string
	Message            string
}
