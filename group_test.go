package vperm

import (
	"errors"
	"slices"
	"testing"

	"github.com/mwantia/vperm/data"
)

func TestGroup_AddMemberPreservesOrder(t *testing.T) {
	g := NewGroup("staff", 10)

	for i, name := range []string{"carol", "alice", "bob"} {
		if err := g.AddMember(NewUser(name, uint32(i+1))); err != nil {
			t.Fatalf("AddMember(%s) failed: %v", name, err)
		}
	}

	want := []string{"carol", "alice", "bob"}
	if got := g.ListMembers(); !slices.Equal(got, want) {
		t.Errorf("ListMembers() = %v, want %v", got, want)
	}
	if g.Len() != 3 {
		t.Errorf("Len() = %d, want 3", g.Len())
	}
}

func TestGroup_AddMemberRejectsDuplicate(t *testing.T) {
	g := NewGroup("staff", 10)
	if err := g.AddMember(NewUser("alice", 1)); err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}

	before := g.ListMembers()
	err := g.AddMember(NewUser("alice", 2))
	if !errors.Is(err, data.ErrDuplicateMember) {
		t.Fatalf("expected ErrDuplicateMember, got %v", err)
	}

	if got := g.ListMembers(); !slices.Equal(got, before) {
		t.Errorf("failed AddMember changed membership: %v", got)
	}

	member, _ := g.Member("alice")
	if member.ID() != 1 {
		t.Errorf("original member was replaced, uid = %d", member.ID())
	}
}

func TestGroup_AddMemberRejectsNil(t *testing.T) {
	g := NewGroup("staff", 10)
	if err := g.AddMember(nil); !errors.Is(err, data.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestGroup_RemoveMemberIsIdempotent(t *testing.T) {
	g := NewGroup("staff", 10)
	for i, name := range []string{"alice", "bob", "carol"} {
		g.AddMember(NewUser(name, uint32(i)))
	}

	g.RemoveMember("bob")
	once := g.ListMembers()

	g.RemoveMember("bob")
	twice := g.ListMembers()

	if !slices.Equal(once, twice) {
		t.Errorf("second removal changed membership: %v vs %v", once, twice)
	}
	if want := []string{"alice", "carol"}; !slices.Equal(once, want) {
		t.Errorf("ListMembers() = %v, want %v", once, want)
	}
	if g.HasMember("bob") {
		t.Error("bob still reported as member")
	}

	// Absent names never error and never change anything
	g.RemoveMember("nobody")
	if got := g.ListMembers(); !slices.Equal(got, once) {
		t.Errorf("removing absent member changed membership: %v", got)
	}
}

func TestGroup_ReAddAfterRemove(t *testing.T) {
	g := NewGroup("staff", 10)
	g.AddMember(NewUser("alice", 1))
	g.AddMember(NewUser("bob", 2))
	g.RemoveMember("alice")

	if err := g.AddMember(NewUser("alice", 1)); err != nil {
		t.Fatalf("re-adding removed member failed: %v", err)
	}
	if want := []string{"bob", "alice"}; !slices.Equal(g.ListMembers(), want) {
		t.Errorf("ListMembers() = %v, want %v", g.ListMembers(), want)
	}
}

func TestGroup_EmptyListIsNotNil(t *testing.T) {
	if NewGroup("empty", 0).ListMembers() == nil {
		t.Error("ListMembers() returned nil for an empty group")
	}
}
