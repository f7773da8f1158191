package vperm

import (
	"fmt"

	"github.com/mwantia/vperm/data"
	"github.com/tidwall/btree"
)

// Directory holds an ordered list of files with unique names.
// Files keep insertion order; removals leave the remaining order intact.
type Directory struct {
	name  string
	perm  data.Permission
	owner data.Principal

	files []*File
	index *btree.Map[string, *File]
}

// NewDirectory creates a directory owned by a snapshot of owner.
// Any number of initial files may be given, including none; duplicate
// names among them are rejected with ErrDuplicateFile.
func NewDirectory(name string, perm data.Permission, owner *User, files ...*File) (*Directory, error) {
	if name == "" {
		return nil, data.InvalidArgument("empty directory name")
	}
	if owner == nil {
		return nil, data.InvalidArgument("directory '%s' requires an owner", name)
	}

	d := &Directory{
		name:  name,
		perm:  perm & data.PermAll,
		owner: owner.Principal(),
		files: make([]*File, 0, len(files)),
		index: btree.NewMap[string, *File](0),
	}

	for _, file := range files {
		if err := d.AddFile(file); err != nil {
			return nil, err
		}
	}

	return d, nil
}

func (d *Directory) Name() string {
	return d.name
}

func (d *Directory) Type() data.EntryType {
	return data.EntryTypeDirectory
}

func (d *Directory) Permissions() data.Permission {
	return d.perm
}

// SetPermissions replaces the permission set as a whole.
func (d *Directory) SetPermissions(perm data.Permission) {
	d.perm = perm & data.PermAll
}

func (d *Directory) Owner() data.Principal {
	return d.owner
}

// SetOwner re-snapshots the owner from u.
func (d *Directory) SetOwner(u *User) error {
	if u == nil {
		return data.InvalidArgument("directory '%s' requires an owner", d.name)
	}

	d.owner = u.Principal()
	return nil
}

// AddFile appends f. A file with the same name is rejected with
// ErrDuplicateFile and the directory is left unchanged.
func (d *Directory) AddFile(f *File) error {
	if f == nil {
		return data.InvalidArgument("nil file for directory '%s'", d.name)
	}

	if _, exists := d.index.Get(f.name); exists {
		return data.DuplicateFile(d.name, f.name)
	}

	d.files = append(d.files, f)
	d.index.Set(f.name, f)

	return nil
}

// RemoveFile removes every file called name. Absent names are ignored.
func (d *Directory) RemoveFile(name string) {
	if _, exists := d.index.Delete(name); !exists {
		return
	}

	kept := d.files[:0]
	for _, file := range d.files {
		if file.name != name {
			kept = append(kept, file)
		}
	}

	for i := len(kept); i < len(d.files); i++ {
		d.files[i] = nil
	}

	d.files = kept
}

// File looks up a file by name, failing with ErrNotFound if it is absent.
func (d *Directory) File(name string) (*File, error) {
	file, exists := d.index.Get(name)
	if !exists {
		return nil, data.NotFound("file", d.name+"/"+name)
	}

	return file, nil
}

// ListFiles returns file names in container order.
func (d *Directory) ListFiles() []string {
	names := make([]string, 0, len(d.files))
	for _, file := range d.files {
		names = append(names, file.name)
	}

	return names
}

// Files returns a copy of the file list in container order.
func (d *Directory) Files() []*File {
	files := make([]*File, len(d.files))
	copy(files, d.files)

	return files
}

func (d *Directory) Len() int {
	return len(d.files)
}

// Describe returns "name d<rwx> owner count".
func (d *Directory) Describe() string {
	return fmt.Sprintf("%s %c%s %s %d", d.name, d.Type().Char(), d.perm.Symbolic(), d.owner.Name, len(d.files))
}

// Entry returns a snapshot of the directory for listings.
func (d *Directory) Entry() data.Entry {
	return data.Entry{
		Name:        d.name,
		Type:        d.Type(),
		Permissions: d.perm,
		Owner:       d.owner,
		Files:       len(d.files),
	}
}

func (d *Directory) String() string {
	return d.Describe()
}
