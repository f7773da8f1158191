package data

// Principal is a snapshot of a user or group identity, taken by value.
// Files and directories record their owner and group as principals, so
// later changes to the originating user or group are not reflected.
type Principal struct {
	Name string
	ID   uint32
}

func (p Principal) String() string {
	return p.Name
}
