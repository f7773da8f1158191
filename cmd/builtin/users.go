package builtin

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mwantia/vperm/cmd"
	"github.com/mwantia/vperm/data"
)

type UserAddCommand struct{}

func (*UserAddCommand) Name() string        { return "useradd" }
func (*UserAddCommand) Description() string { return "Create a new user" }
func (*UserAddCommand) Usage() string       { return "useradd -u UID NAME" }

func (c *UserAddCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) != 1 {
		return fail(data.Usage(c.Usage()))
	}

	uid, err := args.Uint32("uid")
	if err != nil {
		return fail(err)
	}

	if _, err := api.CreateUser(args.Arg(0), uid); err != nil {
		return fail(err)
	}

	return 0, nil
}

func (*UserAddCommand) GetFlags() *cmd.CommandFlagSet {
	return cmd.NewFlagSet(&cmd.CommandFlag{
		Name: "uid", Short: "u", Type: "uint", Required: true,
		Description: "numeric user id",
	})
}

type UserDelCommand struct{}

func (*UserDelCommand) Name() string        { return "userdel" }
func (*UserDelCommand) Description() string { return "Delete a user and drop it from its group" }
func (*UserDelCommand) Usage() string       { return "userdel NAME" }

func (c *UserDelCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) != 1 {
		return fail(data.Usage(c.Usage()))
	}

	api.DeleteUser(args.Arg(0))
	return 0, nil
}

func (*UserDelCommand) GetFlags() *cmd.CommandFlagSet { return nil }

type GroupAddCommand struct{}

func (*GroupAddCommand) Name() string        { return "groupadd" }
func (*GroupAddCommand) Description() string { return "Create a new group" }
func (*GroupAddCommand) Usage() string       { return "groupadd -g GID NAME" }

func (c *GroupAddCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) != 1 {
		return fail(data.Usage(c.Usage()))
	}

	gid, err := args.Uint32("gid")
	if err != nil {
		return fail(err)
	}

	if _, err := api.CreateGroup(args.Arg(0), gid); err != nil {
		return fail(err)
	}

	return 0, nil
}

func (*GroupAddCommand) GetFlags() *cmd.CommandFlagSet {
	return cmd.NewFlagSet(&cmd.CommandFlag{
		Name: "gid", Short: "g", Type: "uint", Required: true,
		Description: "numeric group id",
	})
}

type GroupDelCommand struct{}

func (*GroupDelCommand) Name() string        { return "groupdel" }
func (*GroupDelCommand) Description() string { return "Delete a group and ungroup its members" }
func (*GroupDelCommand) Usage() string       { return "groupdel NAME" }

func (c *GroupDelCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) != 1 {
		return fail(data.Usage(c.Usage()))
	}

	api.DeleteGroup(args.Arg(0))
	return 0, nil
}

func (*GroupDelCommand) GetFlags() *cmd.CommandFlagSet { return nil }

// GpasswdCommand adds a user to a group (-a) or removes it from its group (-d).
type GpasswdCommand struct{}

func (*GpasswdCommand) Name() string        { return "gpasswd" }
func (*GpasswdCommand) Description() string { return "Administer group membership" }
func (*GpasswdCommand) Usage() string       { return "gpasswd -a USER GROUP | gpasswd -d USER" }

func (c *GpasswdCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	add, del := args.String("add"), args.String("delete")

	switch {
	case add != "" && del == "" && len(args.Args) == 1:
		if err := api.AddUserToGroup(add, args.Arg(0)); err != nil {
			return fail(err)
		}
	case del != "" && add == "" && len(args.Args) == 0:
		if err := api.RemoveUserFromGroup(del); err != nil {
			return fail(err)
		}
	default:
		return fail(data.Usage(c.Usage()))
	}

	return 0, nil
}

func (*GpasswdCommand) GetFlags() *cmd.CommandFlagSet {
	return cmd.NewFlagSet(
		&cmd.CommandFlag{Name: "add", Short: "a", Type: "string", Description: "user to add"},
		&cmd.CommandFlag{Name: "delete", Short: "d", Type: "string", Description: "user to remove"},
	)
}

// GroupsCommand prints the members of the user's current group.
type GroupsCommand struct{}

func (*GroupsCommand) Name() string        { return "groups" }
func (*GroupsCommand) Description() string { return "List the members of a user's group" }
func (*GroupsCommand) Usage() string       { return "groups USER" }

func (c *GroupsCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) != 1 {
		return fail(data.Usage(c.Usage()))
	}

	members, err := api.UserGroupMembers(args.Arg(0))
	if err != nil {
		return fail(err)
	}

	fmt.Fprintln(writer, strings.Join(members, " "))
	return 0, nil
}

func (*GroupsCommand) GetFlags() *cmd.CommandFlagSet { return nil }

type MembersCommand struct{}

func (*MembersCommand) Name() string        { return "members" }
func (*MembersCommand) Description() string { return "List the members of a group" }
func (*MembersCommand) Usage() string       { return "members GROUP" }

func (c *MembersCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) != 1 {
		return fail(data.Usage(c.Usage()))
	}

	members, err := api.GroupMembers(args.Arg(0))
	if err != nil {
		return fail(err)
	}

	fmt.Fprintln(writer, strings.Join(members, " "))
	return 0, nil
}

func (*MembersCommand) GetFlags() *cmd.CommandFlagSet { return nil }
