package persistence

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/billiard/physics"
)

// AppName is the gdata application key, selects the per-user data directory
const AppName = "billiard"

const (
	sessionObject   = "session"
	sessionProperty = "last"
)

// Session is the last accepted set of initial conditions
type Session struct {
	Mode  physics.Mode `yaml:"mode"`
	X     float64      `yaml:"x"`
	Y     float64      `yaml:"y"`
	Angle float64      `yaml:"angle"`
}

// Store persists sessions across runs
// A nil manager degrades to memory only, no errors
type Store struct {
	manager *gdata.Manager
	last    *Session
}

// Open creates a store backed by the per-user data directory
// Storage failure is not fatal; the store falls back to memory
func Open(appName string) *Store {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[persistence] storage unavailable: %v (memory only)", err)
		return NewStore(nil)
	}
	return NewStore(m)
}

// NewStore wraps an existing manager, which may be nil
func NewStore(m *gdata.Manager) *Store {
	return &Store{manager: m}
}

// Persistent reports whether sessions survive the process
func (s *Store) Persistent() bool {
	return s.manager != nil
}

// Load returns the last saved session; ok is false when none exists
func (s *Store) Load() (Session, bool, error) {
	if s.manager == nil {
		if s.last == nil {
			return Session{}, false, nil
		}
		return *s.last, true, nil
	}

	if !s.manager.ObjectPropExists(sessionObject, sessionProperty) {
		return Session{}, false, nil
	}

	data, err := s.manager.LoadObjectProp(sessionObject, sessionProperty)
	if err != nil {
		return Session{}, false, fmt.Errorf("failed to load session: %w", err)
	}

	var sess Session
	if err := yaml.Unmarshal(data, &sess); err != nil {
		return Session{}, false, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return sess, true, nil
}

// Save records sess as the last session
func (s *Store) Save(sess Session) error {
	saved := sess
	s.last = &saved

	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.manager.SaveObjectProp(sessionObject, sessionProperty, data); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	log.Printf("[persistence] session saved: %s (%g, %g) angle %g", sess.Mode, sess.X, sess.Y, sess.Angle)
	return nil
}
