package vperm

import (
	"fmt"

	"github.com/mwantia/vperm/data"
)

// DefaultFilePermission is assigned to every newly created file.
const DefaultFilePermission = data.PermReadWrite

// File is a named, sized entry with a permission set.
//
// Owner and group are captured as snapshots when the file is created.
// Later changes to the originating User or Group are not reflected
// until SetOwner or SetGroup is called explicitly.
type File struct {
	name string
	size uint64
	perm data.Permission

	owner data.Principal
	group data.Principal
}

// NewFile creates a file owned by owner and group with DefaultFilePermission.
func NewFile(name string, size uint64, owner *User, group *Group) (*File, error) {
	if name == "" {
		return nil, data.InvalidArgument("empty file name")
	}
	if owner == nil {
		return nil, data.InvalidArgument("file '%s' requires an owner", name)
	}
	if group == nil {
		return nil, data.InvalidArgument("file '%s' requires a group", name)
	}

	return &File{
		name:  name,
		size:  size,
		perm:  DefaultFilePermission,
		owner: owner.Principal(),
		group: group.Principal(),
	}, nil
}

func (f *File) Name() string {
	return f.name
}

func (f *File) Size() uint64 {
	return f.size
}

func (f *File) Type() data.EntryType {
	return data.EntryTypeFile
}

func (f *File) Permissions() data.Permission {
	return f.perm
}

// SetPermissions replaces the permission set as a whole.
func (f *File) SetPermissions(perm data.Permission) {
	f.perm = perm & data.PermAll
}

func (f *File) Owner() data.Principal {
	return f.owner
}

func (f *File) Group() data.Principal {
	return f.group
}

// SetOwner re-snapshots the owner from u.
func (f *File) SetOwner(u *User) error {
	if u == nil {
		return data.InvalidArgument("file '%s' requires an owner", f.name)
	}

	f.owner = u.Principal()
	return nil
}

// SetGroup re-snapshots the group from g.
func (f *File) SetGroup(g *Group) error {
	if g == nil {
		return data.InvalidArgument("file '%s' requires a group", f.name)
	}

	f.group = g.Principal()
	return nil
}

// Describe returns the stat-style summary "name size rwx owner group".
func (f *File) Describe() string {
	return fmt.Sprintf("%s %d %s %s %s", f.name, f.size, f.perm.Symbolic(), f.owner.Name, f.group.Name)
}

func (f *File) Entry() data.Entry {
	return data.Entry{
		Name:        f.name,
		Type:        f.Type(),
		Permissions: f.perm,
		Owner:       f.owner,
		Group:       f.group,
		Size:        f.size,
	}
}

func (f *File) String() string {
	return f.Describe()
}
