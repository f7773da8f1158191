package vperm

import "github.com/mwantia/vperm/data"

// User is an identity that may be associated with at most one Group.
//
// The association is one-directional: JoinGroup does not register the user
// in the group's member list. Keeping both sides in sync is the job of the
// caller, or of Session.AddUserToGroup which does both steps.
type User struct {
	name  string
	id    uint32
	group *Group
}

// NewUser creates a user without a group. The id is caller-assigned.
func NewUser(name string, id uint32) *User {
	return &User{
		name: name,
		id:   id,
	}
}

func (u *User) Name() string {
	return u.name
}

func (u *User) ID() uint32 {
	return u.id
}

// Group returns the current group association, or nil if ungrouped.
func (u *User) Group() *Group {
	return u.group
}

// JoinGroup replaces any existing group association with g.
func (u *User) JoinGroup(g *Group) {
	u.group = g
}

// LeaveGroup clears the group association. Calling it on an ungrouped user is a no-op.
func (u *User) LeaveGroup() {
	u.group = nil
}

// ListGroupMembers returns the member names of the user's current group.
// An ungrouped user yields an empty, non-nil slice.
func (u *User) ListGroupMembers() []string {
	if u.group == nil {
		return []string{}
	}

	return u.group.ListMembers()
}

// Principal returns a by-value snapshot of the user's identity.
func (u *User) Principal() data.Principal {
	return data.Principal{
		Name: u.name,
		ID:   u.id,
	}
}
