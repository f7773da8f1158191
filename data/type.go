package data

// EntryType identifies the kind of entry shown in a listing.
type EntryType int

const (
	EntryTypeFile      EntryType = iota // Regular file
	EntryTypeDirectory                  // Directory
)

// Char returns the leading type character used by long listings.
func (t EntryType) Char() byte {
	switch t {
	case EntryTypeDirectory:
		return 'd'
	default:
		return '-'
	}
}

func (t EntryType) String() string {
	switch t {
	case EntryTypeDirectory:
		return "directory"
	default:
		return "file"
	}
}
