package clientdetect

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrNoProfile is returned when no environment profile source is available.
var ErrNoProfile = errors.New("no environment profile found")

// StorageMode describes the availability of a storage area in a profile.
type StorageMode string

const (
	// StorageOK means the storage area works. This is the default.
	StorageOK StorageMode = "ok"
	// StorageFail means the storage area exists but every operation fails,
	// as under quota or privacy restrictions.
	StorageFail StorageMode = "fail"
	// StorageMissing means the client has no such storage area.
	StorageMissing StorageMode = "missing"
)

// StyleEntry records one property/value pair the client's style system
// accepts.
type StyleEntry struct {
	Property string `yaml:"property"`
	Value    string `yaml:"value"`
}

// Profile is a recorded description of a client environment. The CLI
// loads profiles to replay detections against captured clients.
type Profile struct {
	// Properties lists property names present on the client.
	Properties []string `yaml:"properties"`
	// Styles lists accepted style property/value pairs.
	Styles []StyleEntry `yaml:"styles"`
	// Storage describes the availability of the storage areas.
	Storage struct {
		Local   StorageMode `yaml:"local"`
		Session StorageMode `yaml:"session"`
	} `yaml:"storage"`
}

// LoadProfile reads and parses an environment profile. With an empty path
// it tries default locations in priority order:
//  1. ./client-profile.yaml
//  2. $HOME/.config/client-detect/profile.yaml
func LoadProfile(path string) (*Profile, error) {
	if path != "" {
		return readProfileFile(path)
	}

	var lastErr error
	for _, src := range defaultProfileSources() {
		p, err := readProfileFile(src)
		if err == nil {
			return p, nil
		}
		lastErr = err
	}

	return nil, fmt.Errorf("%w: %w", ErrNoProfile, lastErr)
}

func defaultProfileSources() []string {
	sources := []string{"client-profile.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		sources = append(sources, filepath.Join(home, ".config", "client-detect", "profile.yaml"))
	}
	return sources
}

func readProfileFile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := ReadProfile(f)
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", path, err)
	}
	return p, nil
}

// ReadProfile parses an environment profile from r.
func ReadProfile(r io.Reader) (*Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Profile) validate() error {
	for _, mode := range []StorageMode{p.Storage.Local, p.Storage.Session} {
		switch mode {
		case "", StorageOK, StorageFail, StorageMissing:
		default:
			return fmt.Errorf("unknown storage mode %q", mode)
		}
	}
	return nil
}

// Environment builds a [MapEnvironment] matching the profile. An empty
// storage mode means [StorageOK].
func (p *Profile) Environment() *MapEnvironment {
	env := NewMapEnvironment()
	env.AddProperty(p.Properties...)
	for _, s := range p.Styles {
		env.AddStyle(s.Property, s.Value)
	}
	env.SetLocalStorage(storageFor(p.Storage.Local))
	env.SetSessionStorage(storageFor(p.Storage.Session))
	return env
}

func storageFor(mode StorageMode) Storage {
	switch mode {
	case StorageFail:
		return FailingStorage{}
	case StorageMissing:
		return nil
	default:
		return NewMemStorage()
	}
}
