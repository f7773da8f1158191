package cmd

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/mwantia/vperm/data"
	"github.com/mwantia/vperm/log"
)

// Manager handles command registration, parsing, and execution
type Manager struct {
	mu   sync.RWMutex
	api  API
	log  *log.Logger
	cmds map[string]Command
}

// NewManager creates a manager without any registered commands.
func NewManager(api API, logger *log.Logger) *Manager {
	return &Manager{
		api:  api,
		log:  logger.Named("cmd"),
		cmds: make(map[string]Command),
	}
}

// Register registers a command under its name
func (m *Manager) Register(cmd Command) error {
	if cmd == nil {
		return fmt.Errorf("command cannot be nil")
	}

	name := cmd.Name()
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.cmds[name]; exists {
		return data.AlreadyExists("command", name)
	}

	m.cmds[name] = cmd
	return nil
}

// Unregister removes a registered command and reports whether it existed
func (m *Manager) Unregister(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.cmds[name]; !exists {
		return false
	}

	delete(m.cmds, name)
	return true
}

// Get returns a command by name
func (m *Manager) Get(name string) (Command, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cmd, exists := m.cmds[name]
	if !exists {
		return nil, data.UnknownCommand(name)
	}

	return cmd, nil
}

// List returns all registered commands ordered by name
func (m *Manager) List() []Command {
	m.mu.RLock()
	defer m.mu.RUnlock()

	commands := make([]Command, 0, len(m.cmds))
	for _, cmd := range m.cmds {
		commands = append(commands, cmd)
	}

	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name() < commands[j].Name()
	})

	return commands
}

// Execute parses and executes a command, writing its output to writer
func (m *Manager) Execute(ctx context.Context, writer io.Writer, args ...string) (int, error) {
	if len(args) == 0 {
		return 1, data.Usage("<command> [args...]")
	}

	cmd, err := m.Get(args[0])
	if err != nil {
		return 1, err
	}

	parsed, err := NewParser(cmd.GetFlags()).Parse(args[1:])
	if err != nil {
		return 1, fmt.Errorf("parse error: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return 1, err
	}

	code, err := cmd.Execute(ctx, m.api, parsed, writer)
	if err != nil {
		m.log.Debug("command '%s' failed with code %d: %v", args[0], code, err)
	}

	return code, err
}
