package data

// Entry is a by-value snapshot of a file or directory, safe to read after
// the lock it was taken under has been released.
type Entry struct {
	Name        string
	Type        EntryType
	Permissions Permission
	Owner       Principal

	// Files only
	Group Principal
	Size  uint64

	// Directories only
	Files int
}
