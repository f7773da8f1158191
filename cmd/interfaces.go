package cmd

import (
	"context"
	"io"

	"github.com/mwantia/vperm"
	"github.com/mwantia/vperm/data"
)

// API is the part of vperm.Session that commands operate on.
type API interface {
	CreateUser(name string, id uint32) (*vperm.User, error)
	User(name string) (*vperm.User, error)
	Users() []*vperm.User
	DeleteUser(name string)

	CreateGroup(name string, id uint32) (*vperm.Group, error)
	Group(name string) (*vperm.Group, error)
	Groups() []*vperm.Group
	DeleteGroup(name string)

	// AddUserToGroup records membership on both the user and the group.
	AddUserToGroup(user, group string) error
	// RemoveUserFromGroup detaches the user from whatever group it is in.
	RemoveUserFromGroup(user string) error
	GroupMembers(group string) ([]string, error)
	UserGroupMembers(user string) ([]string, error)

	CreateDirectory(name string, perm data.Permission, owner string) (*vperm.Directory, error)
	Directory(name string) (*vperm.Directory, error)
	Directories() []*vperm.Directory
	DeleteDirectory(name string)

	// Listings are snapshots taken under the session lock; commands must
	// not read entity state through the pointers returned above.
	ListDirectories() []data.Entry
	ListFiles(dir string) ([]string, error)
	ListDirectory(dir string) ([]data.Entry, error)

	CreateFile(dir, name string, size uint64, owner, group string) (*vperm.File, error)
	RemoveFile(dir, name string) error

	// Stat, Chmod and Chown address the directory itself when name is empty.
	Stat(dir, name string) (string, error)
	Chmod(dir, name string, perm data.Permission) error
	Chown(dir, name, owner, group string) error
}

var _ API = (*vperm.Session)(nil)

// Command represents an executable command operating on a session.
type Command interface {
	// Name returns the command identifier
	Name() string

	// Description returns human-readable help text
	Description() string

	// Usage returns a usage string for help (e.g. "ls -l [dir]")
	Usage() string

	// Execute runs the command with parsed arguments
	// The writer parameter is where command output should be written
	// Returns exit code (0 = success) and error message
	Execute(ctx context.Context, api API, args *CommandArgs, writer io.Writer) (int, error)

	// GetFlags returns the flag set for this command (this is optional)
	GetFlags() *CommandFlagSet
}
