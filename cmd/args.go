package cmd

import (
	"fmt"
	"math"
)

// CommandArgs contains parsed command arguments
type CommandArgs struct {
	// Positional arguments (command-specific)
	Args []string

	// Parsed flags
	Flags map[string]any

	// Raw unparsed arguments (for custom parsing)
	Raw []string
}

// CommandFlagSet defines the expected flags for a command
type CommandFlagSet struct {
	Flags map[string]*CommandFlag
}

// CommandFlag represents a single command-line flag
type CommandFlag struct {
	Name        string `json:"name"`              // e.g., "type" or "t"
	Short       string `json:"short"`             // Single-char shorthand (e.g., "t")
	Type        string `json:"type"`              // "string", "bool", "int", "uint"
	Default     any    `json:"default,omitempty"` // Default value
	Required    bool   `json:"required"`          // Must be provided
	Description string `json:"description"`       // Help text
}

// NewFlagSet builds a flag set keyed by each flag's long name.
func NewFlagSet(flags ...*CommandFlag) *CommandFlagSet {
	set := &CommandFlagSet{
		Flags: make(map[string]*CommandFlag, len(flags)),
	}
	for _, flag := range flags {
		set.Flags[flag.Name] = flag
	}

	return set
}

// Arg returns the positional argument at index i, or "" if absent.
func (a *CommandArgs) Arg(i int) string {
	if i < 0 || i >= len(a.Args) {
		return ""
	}

	return a.Args[i]
}

func (a *CommandArgs) Bool(name string) bool {
	v, _ := a.Flags[name].(bool)
	return v
}

func (a *CommandArgs) String(name string) string {
	v, _ := a.Flags[name].(string)
	return v
}

func (a *CommandArgs) Uint64(name string) uint64 {
	v, _ := a.Flags[name].(uint64)
	return v
}

// Uint32 returns a "uint" flag, failing if it does not fit into 32 bits.
func (a *CommandArgs) Uint32(name string) (uint32, error) {
	v := a.Uint64(name)
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("flag --%s value %d out of range", name, v)
	}

	return uint32(v), nil
}
