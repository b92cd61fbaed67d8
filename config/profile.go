package config

import (
	"errors"
	"fmt"
	"log"
	"regexp"

	"github.com/quasilyte/gdata"
)

// ErrNoProfile is returned when a named profile has never been saved.
var ErrNoProfile = errors.New("profile not found")

var profileName = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ProfileStore keeps named tunings in the per-user data directory.
type ProfileStore struct {
	manager itemStore
}

type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// OpenProfiles initializes the gdata manager for profile storage.
func OpenProfiles(appName string) (*ProfileStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize profile storage: %v", err)
		return nil, err
	}
	return &ProfileStore{manager: m}, nil
}

func profileKey(name string) (string, error) {
	if !profileName.MatchString(name) {
		return "", fmt.Errorf("profile name %q: want lower-case letters, digits, '-' or '_'", name)
	}
	return "tuning_" + name, nil
}

// Save validates t and stores it under name.
func (s *ProfileStore) Save(name string, t Tuning) error {
	key, err := profileKey(name)
	if err != nil {
		return err
	}
	if err := Validate(t); err != nil {
		return err
	}
	data, err := Marshal(t)
	if err != nil {
		return err
	}
	if err := s.manager.SaveItem(key, data); err != nil {
		return fmt.Errorf("save profile %s: %w", name, err)
	}
	return nil
}

// Load returns the stored tuning for name, or ErrNoProfile.
func (s *ProfileStore) Load(name string) (Tuning, error) {
	key, err := profileKey(name)
	if err != nil {
		return Tuning{}, err
	}
	data, err := s.manager.LoadItem(key)
	if err != nil {
		return Tuning{}, fmt.Errorf("load profile %s: %w", name, err)
	}
	if data == nil {
		return Tuning{}, fmt.Errorf("%w: %s", ErrNoProfile, name)
	}
	t, err := Parse(data)
	if err != nil {
		return Tuning{}, fmt.Errorf("profile %s: %w", name, err)
	}
	return t, nil
}
