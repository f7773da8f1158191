package cmd

import (
	"errors"
	"testing"

	"github.com/mwantia/vperm/data"
)

func testFlagSet() *CommandFlagSet {
	return NewFlagSet(
		&CommandFlag{Name: "long", Short: "l", Type: "bool"},
		&CommandFlag{Name: "human", Short: "h", Type: "bool"},
		&CommandFlag{Name: "uid", Short: "u", Type: "uint"},
		&CommandFlag{Name: "owner", Short: "o", Type: "string", Default: "root"},
	)
}

func TestParser_Flags(t *testing.T) {
	tests := []struct {
		name  string
		raw   []string
		check func(t *testing.T, args *CommandArgs)
	}{
		{
			name: "clustered bools",
			raw:  []string{"-lh", "home"},
			check: func(t *testing.T, args *CommandArgs) {
				if !args.Bool("long") || !args.Bool("human") {
					t.Errorf("expected both bool flags, got %v", args.Flags)
				}
				if args.Arg(0) != "home" {
					t.Errorf("expected positional 'home', got %v", args.Args)
				}
			},
		},
		{
			name: "long with equals",
			raw:  []string{"--uid=42", "alice"},
			check: func(t *testing.T, args *CommandArgs) {
				if uid, err := args.Uint32("uid"); err != nil || uid != 42 {
					t.Errorf("uid = %d, %v", uid, err)
				}
			},
		},
		{
			name: "short with separate value",
			raw:  []string{"-u", "7", "-o", "bob"},
			check: func(t *testing.T, args *CommandArgs) {
				if args.Uint64("uid") != 7 || args.String("owner") != "bob" {
					t.Errorf("unexpected flags %v", args.Flags)
				}
			},
		},
		{
			name: "short with attached value",
			raw:  []string{"-u9"},
			check: func(t *testing.T, args *CommandArgs) {
				if args.Uint64("uid") != 9 {
					t.Errorf("unexpected flags %v", args.Flags)
				}
			},
		},
		{
			name: "default applied",
			raw:  []string{},
			check: func(t *testing.T, args *CommandArgs) {
				if args.String("owner") != "root" {
					t.Errorf("expected default owner, got %v", args.Flags["owner"])
				}
			},
		},
		{
			name: "double dash ends flags",
			raw:  []string{"--", "-wx", "home/a"},
			check: func(t *testing.T, args *CommandArgs) {
				if args.Arg(0) != "-wx" || args.Arg(1) != "home/a" {
					t.Errorf("unexpected positionals %v", args.Args)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := NewParser(testFlagSet()).Parse(tt.raw)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			tt.check(t, args)
		})
	}
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
	}{
		{"unknown long", []string{"--nope"}},
		{"unknown short", []string{"-z"}},
		{"missing value", []string{"--uid"}},
		{"invalid uint", []string{"--uid", "abc"}},
		{"negative uint", []string{"-u", "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewParser(testFlagSet()).Parse(tt.raw); err == nil {
				t.Errorf("expected error for %v", tt.raw)
			}
		})
	}
}

func TestParser_Required(t *testing.T) {
	set := NewFlagSet(&CommandFlag{Name: "gid", Short: "g", Type: "uint", Required: true})

	if _, err := NewParser(set).Parse([]string{"staff"}); err == nil {
		t.Error("expected error for missing required flag")
	}
	if _, err := NewParser(nil).Parse([]string{"a", "b"}); err != nil {
		t.Errorf("nil flag set should accept positionals: %v", err)
	}
}

func TestArgs_Uint32Range(t *testing.T) {
	args := &CommandArgs{Flags: map[string]any{"uid": uint64(1) << 40}}
	if _, err := args.Uint32("uid"); err == nil {
		t.Error("expected out of range error")
	}
	if args.Arg(3) != "" {
		t.Error("Arg out of range should be empty")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want data.Permission
	}{
		{"0", data.PermNone},
		{"5", data.PermReadExecute},
		{"7", data.PermAll},
		{"rw-", data.PermReadWrite},
		{"--x", data.PermExecute},
		{"---", data.PermNone},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if err != nil {
			t.Errorf("ParseMode(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "8", "9", "wrx", "rwxr", "r-"} {
		if _, err := ParseMode(bad); !errors.Is(err, data.ErrInvalidArgument) {
			t.Errorf("ParseMode(%q) = %v, want ErrInvalidArgument", bad, err)
		}
	}
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		in        string
		dir, file string
		wantErr   bool
	}{
		{"home", "home", "", false},
		{"home/", "home", "", false},
		{"home/a.txt", "home", "a.txt", false},
		{"/a.txt", "", "", true},
		{"home/sub/a.txt", "", "", true},
	}

	for _, tt := range tests {
		dir, file, err := SplitPath(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("SplitPath(%q) error = %v", tt.in, err)
			continue
		}
		if dir != tt.dir || file != tt.file {
			t.Errorf("SplitPath(%q) = %q, %q", tt.in, dir, file)
		}
	}
}
