package builtin

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mwantia/vperm/cmd"
	"github.com/mwantia/vperm/data"
)

type MkdirCommand struct{}

func (*MkdirCommand) Name() string        { return "mkdir" }
func (*MkdirCommand) Description() string { return "Create an empty directory" }
func (*MkdirCommand) Usage() string       { return "mkdir -o OWNER [-m MODE] NAME" }

func (c *MkdirCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) != 1 {
		return fail(data.Usage(c.Usage()))
	}

	perm, err := cmd.ParseMode(args.String("mode"))
	if err != nil {
		return fail(err)
	}

	if _, err := api.CreateDirectory(args.Arg(0), perm, args.String("owner")); err != nil {
		return fail(err)
	}

	return 0, nil
}

func (*MkdirCommand) GetFlags() *cmd.CommandFlagSet {
	return cmd.NewFlagSet(
		&cmd.CommandFlag{Name: "owner", Short: "o", Type: "string", Required: true, Description: "owning user"},
		&cmd.CommandFlag{Name: "mode", Short: "m", Type: "string", Default: "rwx", Description: "permissions, octal digit or rwx"},
	)
}

type RmdirCommand struct{}

func (*RmdirCommand) Name() string        { return "rmdir" }
func (*RmdirCommand) Description() string { return "Delete a directory and its files" }
func (*RmdirCommand) Usage() string       { return "rmdir NAME" }

func (c *RmdirCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) != 1 {
		return fail(data.Usage(c.Usage()))
	}

	api.DeleteDirectory(args.Arg(0))
	return 0, nil
}

func (*RmdirCommand) GetFlags() *cmd.CommandFlagSet { return nil }

type TouchCommand struct{}

func (*TouchCommand) Name() string        { return "touch" }
func (*TouchCommand) Description() string { return "Create a file inside a directory" }
func (*TouchCommand) Usage() string       { return "touch -o OWNER -g GROUP [-s SIZE] DIR/FILE" }

func (c *TouchCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) != 1 {
		return fail(data.Usage(c.Usage()))
	}

	dir, file, err := cmd.SplitPath(args.Arg(0))
	if err != nil {
		return fail(err)
	}
	if file == "" {
		return fail(data.Usage(c.Usage()))
	}

	if _, err := api.CreateFile(dir, file, args.Uint64("size"), args.String("owner"), args.String("group")); err != nil {
		return fail(err)
	}

	return 0, nil
}

func (*TouchCommand) GetFlags() *cmd.CommandFlagSet {
	return cmd.NewFlagSet(
		&cmd.CommandFlag{Name: "owner", Short: "o", Type: "string", Required: true, Description: "owning user"},
		&cmd.CommandFlag{Name: "group", Short: "g", Type: "string", Required: true, Description: "owning group"},
		&cmd.CommandFlag{Name: "size", Short: "s", Type: "uint", Default: uint64(0), Description: "size in bytes"},
	)
}

type RmCommand struct{}

func (*RmCommand) Name() string        { return "rm" }
func (*RmCommand) Description() string { return "Remove a file from a directory" }
func (*RmCommand) Usage() string       { return "rm DIR/FILE" }

func (c *RmCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) != 1 {
		return fail(data.Usage(c.Usage()))
	}

	dir, file, err := cmd.SplitPath(args.Arg(0))
	if err != nil {
		return fail(err)
	}
	if file == "" {
		return fail(data.Usage(c.Usage()))
	}

	if err := api.RemoveFile(dir, file); err != nil {
		return fail(err)
	}

	return 0, nil
}

func (*RmCommand) GetFlags() *cmd.CommandFlagSet { return nil }

// LsCommand lists directories, or the files of one directory in container order.
type LsCommand struct{}

func (*LsCommand) Name() string        { return "ls" }
func (*LsCommand) Description() string { return "List directories or directory contents" }
func (*LsCommand) Usage() string       { return "ls [-l] [-h] [DIR]" }

func (c *LsCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	long, human := args.Bool("long"), args.Bool("human")

	switch len(args.Args) {
	case 0:
		for _, d := range api.ListDirectories() {
			if long {
				fmt.Fprintf(writer, "%c%s %s %d %s\n", d.Type.Char(), d.Permissions, d.Owner, d.Files, d.Name)
			} else {
				fmt.Fprintln(writer, d.Name)
			}
		}
	case 1:
		if !long {
			names, err := api.ListFiles(args.Arg(0))
			if err != nil {
				return fail(err)
			}
			if len(names) > 0 {
				fmt.Fprintln(writer, strings.Join(names, "\n"))
			}
			break
		}

		entries, err := api.ListDirectory(args.Arg(0))
		if err != nil {
			return fail(err)
		}

		for _, f := range entries {
			size := fmt.Sprintf("%d", f.Size)
			if human {
				size = humanize.Bytes(f.Size)
			}
			fmt.Fprintf(writer, "%c%s %s %s %s %s\n", f.Type.Char(), f.Permissions, f.Owner, f.Group, size, f.Name)
		}
	default:
		return fail(data.Usage(c.Usage()))
	}

	return 0, nil
}

func (*LsCommand) GetFlags() *cmd.CommandFlagSet {
	return cmd.NewFlagSet(
		&cmd.CommandFlag{Name: "long", Short: "l", Type: "bool", Description: "long listing"},
		&cmd.CommandFlag{Name: "human", Short: "h", Type: "bool", Description: "human readable sizes"},
	)
}

type StatCommand struct{}

func (*StatCommand) Name() string        { return "stat" }
func (*StatCommand) Description() string { return "Describe a file or directory" }
func (*StatCommand) Usage() string       { return "stat DIR[/FILE]" }

func (c *StatCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) != 1 {
		return fail(data.Usage(c.Usage()))
	}

	dir, file, err := cmd.SplitPath(args.Arg(0))
	if err != nil {
		return fail(err)
	}

	desc, err := api.Stat(dir, file)
	if err != nil {
		return fail(err)
	}

	fmt.Fprintln(writer, desc)
	return 0, nil
}

func (*StatCommand) GetFlags() *cmd.CommandFlagSet { return nil }

// ChmodCommand replaces permissions. Symbolic modes starting with '-' need a
// preceding "--" so they are not read as flags.
type ChmodCommand struct{}

func (*ChmodCommand) Name() string        { return "chmod" }
func (*ChmodCommand) Description() string { return "Replace the permissions of a file or directory" }
func (*ChmodCommand) Usage() string       { return "chmod MODE DIR[/FILE]" }

func (c *ChmodCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) != 2 {
		return fail(data.Usage(c.Usage()))
	}

	perm, err := cmd.ParseMode(args.Arg(0))
	if err != nil {
		return fail(err)
	}

	dir, file, err := cmd.SplitPath(args.Arg(1))
	if err != nil {
		return fail(err)
	}

	if err := api.Chmod(dir, file, perm); err != nil {
		return fail(err)
	}

	return 0, nil
}

func (*ChmodCommand) GetFlags() *cmd.CommandFlagSet { return nil }

type ChownCommand struct{}

func (*ChownCommand) Name() string        { return "chown" }
func (*ChownCommand) Description() string { return "Change the recorded owner and group" }
func (*ChownCommand) Usage() string       { return "chown USER[:GROUP] DIR[/FILE]" }

func (c *ChownCommand) Execute(ctx context.Context, api cmd.API, args *cmd.CommandArgs, writer io.Writer) (int, error) {
	if len(args.Args) != 2 {
		return fail(data.Usage(c.Usage()))
	}

	owner, group, _ := strings.Cut(args.Arg(0), ":")

	dir, file, err := cmd.SplitPath(args.Arg(1))
	if err != nil {
		return fail(err)
	}

	if err := api.Chown(dir, file, owner, group); err != nil {
		return fail(err)
	}

	return 0, nil
}

func (*ChownCommand) GetFlags() *cmd.CommandFlagSet { return nil }
