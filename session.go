package vperm

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/mwantia/vperm/data"
	"github.com/mwantia/vperm/log"
	"github.com/tidwall/btree"
)

var errNilLogWriter = errors.New("vperm: log writer must not be nil")

// Session owns every user, group and directory created through it.
// It replaces process-wide state: callers create one session and pass it
// to whatever needs to operate on the model.
//
// Session methods are safe for concurrent use. The entities they return are
// not; callers that mutate a returned entity directly must not share it
// across goroutines without their own synchronisation.
type Session struct {
	mu sync.RWMutex

	id  string
	log *log.Logger

	users       *btree.Map[string, *User]
	groups      *btree.Map[string, *Group]
	directories *btree.Map[string, *Directory]
}

// NewSession creates an empty session. Without options it logs at Info level
// to stdout, so rejected mutations show up as warnings on the terminal; use
// WithoutTerminalLog, WithLogFile or WithLogWriter to redirect them.
func NewSession(opts ...SessionOption) (*Session, error) {
	options := newDefaultSessionOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	var logger *log.Logger
	if options.LogWriter != nil {
		logger = log.NewWriterLogger("vperm", options.LogLevel, options.LogWriter)
	} else {
		logger = log.NewLogger("vperm", options.LogLevel, options.LogFile, options.NoTerminalLog)
	}
	logger.JSON = options.JSONLog

	s := &Session{
		id:          uuid.Must(uuid.NewV7()).String(),
		log:         logger,
		users:       btree.NewMap[string, *User](0),
		groups:      btree.NewMap[string, *Group](0),
		directories: btree.NewMap[string, *Directory](0),
	}

	s.log.Debug("session '%s' started", s.id)
	return s, nil
}

// ID returns the unique identifier of this session.
func (s *Session) ID() string {
	return s.id
}

// Logger returns the session logger, for collaborators that want to log under it.
func (s *Session) Logger() *log.Logger {
	return s.log
}

// Close drops every entity owned by the session.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users.Clear()
	s.groups.Clear()
	s.directories.Clear()

	s.log.Debug("session '%s' closed", s.id)
	return nil
}

// Check audits referential consistency between users and groups and
// returns every violation found, joined into one error.
func (s *Session) Check() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var errs data.Errors

	s.groups.Scan(func(name string, g *Group) bool {
		for _, member := range g.members {
			if registered, ok := s.users.Get(member.name); !ok || registered != member {
				errs.Add(data.Inconsistent("member '%s' of group '%s' is not a registered user", member.name, name))
			}
			if member.group != g {
				errs.Add(data.Inconsistent("user '%s' is listed in group '%s' but not associated with it", member.name, name))
			}
		}
		return true
	})

	s.users.Scan(func(name string, u *User) bool {
		if u.group == nil {
			return true
		}

		if registered, ok := s.groups.Get(u.group.name); !ok || registered != u.group {
			errs.Add(data.Inconsistent("group '%s' of user '%s' is not registered", u.group.name, name))
		}
		if member, ok := u.group.Member(name); !ok || member != u {
			errs.Add(data.Inconsistent("user '%s' is associated with group '%s' but not listed in it", name, u.group.name))
		}
		return true
	})

	return errs.Errors()
}

func checkName(kind, name string) error {
	if name == "" {
		return data.InvalidArgument("empty %s name", kind)
	}

	return nil
}
