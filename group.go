package vperm

import (
	"github.com/mwantia/vperm/data"
	"github.com/tidwall/btree"
)

// Group is an identity with an ordered membership that never holds two
// users with the same name. The index mirrors members for name lookups;
// members alone defines the order.
type Group struct {
	name string
	id   uint32

	members []*User
	index   *btree.Map[string, *User]
}

// NewGroup creates a group with no members.
func NewGroup(name string, id uint32) *Group {
	return &Group{
		name:    name,
		id:      id,
		members: make([]*User, 0),
		index:   btree.NewMap[string, *User](0),
	}
}

func (g *Group) Name() string {
	return g.name
}

func (g *Group) ID() uint32 {
	return g.id
}

// AddMember appends u to the membership.
// A member with the same name is rejected with ErrDuplicateMember and the
// membership is left unchanged.
func (g *Group) AddMember(u *User) error {
	if u == nil {
		return data.InvalidArgument("nil user for group '%s'", g.name)
	}

	if _, exists := g.index.Get(u.name); exists {
		return data.DuplicateMember(g.name, u.name)
	}

	g.members = append(g.members, u)
	g.index.Set(u.name, u)

	return nil
}

// RemoveMember removes every member called name. Absent names are ignored.
func (g *Group) RemoveMember(name string) {
	if _, exists := g.index.Delete(name); !exists {
		return
	}

	kept := g.members[:0]
	for _, member := range g.members {
		if member.name != name {
			kept = append(kept, member)
		}
	}

	// Release references held by the truncated tail
	for i := len(kept); i < len(g.members); i++ {
		g.members[i] = nil
	}

	g.members = kept
}

// ListMembers returns member names in insertion order.
func (g *Group) ListMembers() []string {
	names := make([]string, 0, len(g.members))
	for _, member := range g.members {
		names = append(names, member.name)
	}

	return names
}

// Member looks up a member by name.
func (g *Group) Member(name string) (*User, bool) {
	return g.index.Get(name)
}

func (g *Group) HasMember(name string) bool {
	_, exists := g.index.Get(name)
	return exists
}

func (g *Group) Len() int {
	return len(g.members)
}

// Principal returns a by-value snapshot of the group's identity.
func (g *Group) Principal() data.Principal {
	return data.Principal{
		Name: g.name,
		ID:   g.id,
	}
}
