package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golangdaddy/outrun/pkg/config"
	"github.com/golangdaddy/outrun/pkg/monitoring"
)

// Profile is the player's saved record.
type Profile struct {
	Name     string  `json:"name"`
	BestLap  float64 `json:"best_lap"` // seconds, zero when no lap has been completed
	Laps     int     `json:"laps"`
	Distance float64 `json:"distance_travelled"`
	// Options are the settings the player last raced with.
	Options   *config.Config `json:"options,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// NewProfile creates an empty profile
func NewProfile(name string) *Profile {
	now := time.Now()
	return &Profile{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SaveToFile saves the profile to a JSON file
func (p *Profile) SaveToFile(filename string) error {
	p.UpdatedAt = time.Now()

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}

// LoadFromFile loads a profile from a JSON file
func LoadFromFile(filename string) (*Profile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", filename, err)
	}
	if p.BestLap < 0 {
		p.BestLap = 0
	}
	return &p, nil
}

// Store keeps a profile in sync with its file. Read and write failures are
// logged and otherwise ignored: a profile that cannot be read starts empty.
type Store struct {
	path    string
	profile *Profile
}

// OpenStore loads the profile at path, or starts a new one.
func OpenStore(path, name string) *Store {
	p, err := LoadFromFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		p = NewProfile(name)
	case err != nil:
		monitoring.Logf("starting a new profile: %v", err)
		p = NewProfile(name)
	}
	return &Store{path: path, profile: p}
}

// Profile returns the loaded profile.
func (s *Store) Profile() *Profile {
	return s.profile
}

// BestLap returns the stored best lap in seconds, or zero and false.
func (s *Store) BestLap() (float64, bool) {
	if s.profile.BestLap <= 0 {
		return 0, false
	}
	return s.profile.BestLap, true
}

// SetBestLap stores a new best lap and writes the file.
func (s *Store) SetBestLap(seconds float64) {
	s.profile.BestLap = seconds
	s.save()
}

// RecordLap counts a completed lap of the given length.
func (s *Store) RecordLap(distance float64) {
	s.profile.Laps++
	s.profile.Distance += distance
}

// SetOptions remembers cfg and writes the file. The track seed is left out:
// each launch picks its own.
func (s *Store) SetOptions(cfg config.Config) {
	cfg.Seed = 0
	s.profile.Options = &cfg
	s.save()
}

// StartConfig is the configuration a launch races with: the saved options or
// the defaults, overlaid with the tuning file at tuningPath when one is
// given. seed always wins, so 0 means a random track even if an older
// profile stored one.
func (s *Store) StartConfig(tuningPath string, seed int64) config.Config {
	cfg := config.Default()
	if saved := s.profile.Options; saved != nil {
		cfg = saved.Clamp()
	}
	if tuningPath != "" {
		tf, err := config.LoadTuningFile(tuningPath)
		if err != nil {
			monitoring.Logf("ignoring tuning file: %v", err)
		} else {
			cfg = tf.Apply(cfg)
		}
	}
	cfg.Seed = seed
	return cfg
}

// Save writes the profile.
func (s *Store) Save() error {
	return s.profile.SaveToFile(s.path)
}

func (s *Store) save() {
	if s.path == "" {
		return
	}
	if err := s.Save(); err != nil {
		monitoring.Logf("could not save profile: %v", err)
	}
}
