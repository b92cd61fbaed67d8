package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML tuning file. Keys missing from the file keep their
// default values.
func Load(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("read tuning %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return Tuning{}, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes YAML on top of Defaults and validates the result.
func Parse(data []byte) (Tuning, error) {
	t := Defaults()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("decode: %w", err)
	}
	if err := Validate(t); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Marshal encodes t as YAML.
func Marshal(t Tuning) ([]byte, error) {
	data, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("encode tuning: %w", err)
	}
	return data, nil
}

// Resolve picks the starting tuning: the file at path if set, else the
// named profile, else Defaults.
func Resolve(path, profile string, store *ProfileStore) (Tuning, error) {
	switch {
	case path != "":
		return Load(path)
	case profile != "":
		if store == nil {
			return Tuning{}, fmt.Errorf("profile %s: no profile storage", profile)
		}
		return store.Load(profile)
	}
	return Defaults(), nil
}
