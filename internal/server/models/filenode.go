package models

import "time"

// Node kinds. Kind is immutable after creation.
const (
	KindFolder = "folder"
	KindFile   = "file"
	KindImage  = "image"
)

// RootParentID is the sentinel parent of top-level nodes.
const RootParentID = "0"

// FileNode is a folder or a stored file/image. Folders never carry a
// LocalRef; files and images always do.
type FileNode struct {
	ID       string
	OwnerID  string
	Name     string
	Kind     string
	IsPublic bool
	// ParentID is RootParentID for top-level nodes, otherwise the id of a
	// folder node.
	ParentID string
	// LocalRef is the blob-store reference of the content. Empty for folders.
	LocalRef string
	// Seq is assigned at insert and fixes the creation order for listings.
	Seq       int64
	CreatedAt time.Time
}

// ValidKind reports whether kind is one of the recognized node kinds.
func ValidKind(kind string) bool {
	switch kind {
	case KindFolder, KindFile, KindImage:
		return true
	}
	return false
}
