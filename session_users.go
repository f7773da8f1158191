package vperm

import "github.com/mwantia/vperm/data"

// CreateUser registers a new ungrouped user. Names are unique per session.
func (s *Session) CreateUser(name string, id uint32) (*User, error) {
	if err := checkName("user", name); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users.Get(name); exists {
		s.log.Warn("rejected user '%s': already exists", name)
		return nil, data.AlreadyExists("user", name)
	}

	u := NewUser(name, id)
	s.users.Set(name, u)

	s.log.Debug("created user '%s' (uid %d)", name, id)
	return u, nil
}

func (s *Session) User(name string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lookupUser(name)
}

// Users returns all users ordered by name.
func (s *Session) Users() []*User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*User, 0, s.users.Len())
	s.users.Scan(func(_ string, u *User) bool {
		users = append(users, u)
		return true
	})

	return users
}

// DeleteUser unregisters the user and drops it from its group.
// Files and directories keep their owner snapshot. Unknown names are ignored.
func (s *Session) DeleteUser(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.users.Delete(name)
	if !exists {
		return
	}

	if g := u.Group(); g != nil {
		g.RemoveMember(name)
		u.LeaveGroup()
	}

	s.log.Debug("deleted user '%s'", name)
}

// CreateGroup registers a new empty group. Names are unique per session.
func (s *Session) CreateGroup(name string, id uint32) (*Group, error) {
	if err := checkName("group", name); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.groups.Get(name); exists {
		s.log.Warn("rejected group '%s': already exists", name)
		return nil, data.AlreadyExists("group", name)
	}

	g := NewGroup(name, id)
	s.groups.Set(name, g)

	s.log.Debug("created group '%s' (gid %d)", name, id)
	return g, nil
}

func (s *Session) Group(name string) (*Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lookupGroup(name)
}

// Groups returns all groups ordered by name.
func (s *Session) Groups() []*Group {
	s.mu.RLock()
	defer s.mu.RUnlock()

	groups := make([]*Group, 0, s.groups.Len())
	s.groups.Scan(func(_ string, g *Group) bool {
		groups = append(groups, g)
		return true
	})

	return groups
}

// DeleteGroup unregisters the group and ungroups every user pointing at it.
// Unknown names are ignored.
func (s *Session) DeleteGroup(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, exists := s.groups.Delete(name)
	if !exists {
		return
	}

	s.users.Scan(func(_ string, u *User) bool {
		if u.Group() == g {
			u.LeaveGroup()
		}
		return true
	})

	for _, member := range g.ListMembers() {
		g.RemoveMember(member)
	}

	s.log.Debug("deleted group '%s'", name)
}

// AddUserToGroup records the membership on both sides: the group's member
// list and the user's group link. A user in another group is moved.
// On failure neither side is modified.
func (s *Session) AddUserToGroup(user, group string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.lookupUser(user)
	if err != nil {
		return err
	}

	g, err := s.lookupGroup(group)
	if err != nil {
		return err
	}

	if err := g.AddMember(u); err != nil {
		s.log.Warn("rejected membership of '%s' in '%s': %v", user, group, err)
		return err
	}

	if previous := u.Group(); previous != nil && previous != g {
		previous.RemoveMember(u.Name())
	}
	u.JoinGroup(g)

	s.log.Debug("added user '%s' to group '%s'", user, group)
	return nil
}

// RemoveUserFromGroup detaches the user from its current group on both sides.
// Ungrouped users are left as they are.
func (s *Session) RemoveUserFromGroup(user string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.lookupUser(user)
	if err != nil {
		return err
	}

	g := u.Group()
	if g == nil {
		return nil
	}

	g.RemoveMember(u.Name())
	u.LeaveGroup()

	s.log.Debug("removed user '%s' from group '%s'", user, g.Name())
	return nil
}

// GroupMembers returns the member names of group in insertion order.
func (s *Session) GroupMembers(group string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, err := s.lookupGroup(group)
	if err != nil {
		return nil, err
	}

	return g.ListMembers(), nil
}

// UserGroupMembers returns the member names of the user's current group,
// or an empty slice for an ungrouped user.
func (s *Session) UserGroupMembers(user string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, err := s.lookupUser(user)
	if err != nil {
		return nil, err
	}

	return u.ListGroupMembers(), nil
}

func (s *Session) lookupUser(name string) (*User, error) {
	u, exists := s.users.Get(name)
	if !exists {
		return nil, data.NotFound("user", name)
	}

	return u, nil
}

func (s *Session) lookupGroup(name string) (*Group, error) {
	g, exists := s.groups.Get(name)
	if !exists {
		return nil, data.NotFound("group", name)
	}

	return g, nil
}
