package builtin

import (
	"github.com/mwantia/vperm/cmd"
	"github.com/mwantia/vperm/log"
)

// All returns a fresh instance of every builtin command.
func All() []cmd.Command {
	return []cmd.Command{
		&UserAddCommand{},
		&UserDelCommand{},
		&GroupAddCommand{},
		&GroupDelCommand{},
		&GpasswdCommand{},
		&GroupsCommand{},
		&MembersCommand{},
		&MkdirCommand{},
		&RmdirCommand{},
		&TouchCommand{},
		&RmCommand{},
		&LsCommand{},
		&StatCommand{},
		&ChmodCommand{},
		&ChownCommand{},
	}
}

// Register adds all builtins to m.
func Register(m *cmd.Manager) error {
	for _, command := range All() {
		if err := m.Register(command); err != nil {
			return err
		}
	}

	return nil
}

// NewManager returns a manager for api with every builtin registered.
func NewManager(api cmd.API, logger *log.Logger) (*cmd.Manager, error) {
	m := cmd.NewManager(api, logger)
	if err := Register(m); err != nil {
		return nil, err
	}

	return m, nil
}

func fail(err error) (int, error) {
	return 1, err
}
