package vperm

import "github.com/mwantia/vperm/data"

// CreateDirectory registers an empty directory owned by a snapshot of owner.
func (s *Session) CreateDirectory(name string, perm data.Permission, owner string) (*Directory, error) {
	if err := checkName("directory", name); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.directories.Get(name); exists {
		s.log.Warn("rejected directory '%s': already exists", name)
		return nil, data.AlreadyExists("directory", name)
	}

	u, err := s.lookupUser(owner)
	if err != nil {
		return nil, err
	}

	d, err := NewDirectory(name, perm, u)
	if err != nil {
		return nil, err
	}
	s.directories.Set(name, d)

	s.log.Debug("created directory '%s' (%s, owner '%s')", name, perm, owner)
	return d, nil
}

func (s *Session) Directory(name string) (*Directory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lookupDirectory(name)
}

// Directories returns all directories ordered by name.
func (s *Session) Directories() []*Directory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	directories := make([]*Directory, 0, s.directories.Len())
	s.directories.Scan(func(_ string, d *Directory) bool {
		directories = append(directories, d)
		return true
	})

	return directories
}

// ListDirectories returns a snapshot of every directory ordered by name.
func (s *Session) ListDirectories() []data.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]data.Entry, 0, s.directories.Len())
	s.directories.Scan(func(_ string, d *Directory) bool {
		entries = append(entries, d.Entry())
		return true
	})

	return entries
}

// ListFiles returns the file names of dir in container order.
func (s *Session) ListFiles(dir string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, err := s.lookupDirectory(dir)
	if err != nil {
		return nil, err
	}

	return d.ListFiles(), nil
}

// ListDirectory returns a snapshot of the files of dir in container order.
func (s *Session) ListDirectory(dir string) ([]data.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, err := s.lookupDirectory(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]data.Entry, 0, len(d.files))
	for _, f := range d.files {
		entries = append(entries, f.Entry())
	}

	return entries, nil
}

// DeleteDirectory drops the directory and every file in it. Unknown names are ignored.
func (s *Session) DeleteDirectory(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.directories.Delete(name); exists {
		s.log.Debug("deleted directory '%s'", name)
	}
}

// CreateFile creates a file from the registered owner and group and adds it to dir.
func (s *Session) CreateFile(dir, name string, size uint64, owner, group string) (*File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.lookupDirectory(dir)
	if err != nil {
		return nil, err
	}

	u, err := s.lookupUser(owner)
	if err != nil {
		return nil, err
	}

	g, err := s.lookupGroup(group)
	if err != nil {
		return nil, err
	}

	f, err := NewFile(name, size, u, g)
	if err != nil {
		return nil, err
	}

	if err := d.AddFile(f); err != nil {
		s.log.Warn("rejected file '%s' in '%s': %v", name, dir, err)
		return nil, err
	}

	s.log.Debug("created file '%s'", f.Describe())
	return f, nil
}

// RemoveFile removes a file from dir. The directory must exist; the file need not.
func (s *Session) RemoveFile(dir, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.lookupDirectory(dir)
	if err != nil {
		return err
	}

	d.RemoveFile(name)
	return nil
}

// Stat describes a file, or the directory itself when name is empty.
func (s *Session) Stat(dir, name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, err := s.lookupDirectory(dir)
	if err != nil {
		return "", err
	}

	if name == "" {
		return d.Describe(), nil
	}

	f, err := d.File(name)
	if err != nil {
		return "", err
	}

	return f.Describe(), nil
}

// Chmod replaces the permissions of a file, or of the directory itself when name is empty.
func (s *Session) Chmod(dir, name string, perm data.Permission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.lookupDirectory(dir)
	if err != nil {
		return err
	}

	if name == "" {
		d.SetPermissions(perm)
	} else {
		f, err := d.File(name)
		if err != nil {
			return err
		}
		f.SetPermissions(perm)
	}

	s.log.Debug("changed permissions of '%s/%s' to %s", dir, name, perm)
	return nil
}

// Chown re-snapshots the owner, and the group unless group is empty, of a
// file or of the directory itself when name is empty. Directories carry no
// group, so a group for a directory is rejected.
func (s *Session) Chown(dir, name, owner, group string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.lookupDirectory(dir)
	if err != nil {
		return err
	}

	u, err := s.lookupUser(owner)
	if err != nil {
		return err
	}

	if name == "" {
		if group != "" {
			return data.InvalidArgument("directory '%s' has no group", dir)
		}
		return d.SetOwner(u)
	}

	f, err := d.File(name)
	if err != nil {
		return err
	}

	var g *Group
	if group != "" {
		if g, err = s.lookupGroup(group); err != nil {
			return err
		}
	}

	if err := f.SetOwner(u); err != nil {
		return err
	}
	if g != nil {
		if err := f.SetGroup(g); err != nil {
			return err
		}
	}

	s.log.Debug("changed ownership of '%s/%s' to %s", dir, name, owner)
	return nil
}

func (s *Session) lookupDirectory(name string) (*Directory, error) {
	d, exists := s.directories.Get(name)
	if !exists {
		return nil, data.NotFound("directory", name)
	}

	return d, nil
}
