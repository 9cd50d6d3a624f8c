// Package profiles holds the published protocol revisions and the lookup table over them.
package profiles

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/turtacn/h5sign/internal/domain/models"
	"github.com/turtacn/h5sign/pkg/errors"
)

// Table maps version strings to profiles. It is append-only.
type Table struct {
	mu       sync.RWMutex
	profiles map[string]*models.VersionProfile
}

// NewTable creates a table holding the built-in profiles.
func NewTable() *Table {
	t := &Table{profiles: make(map[string]*models.VersionProfile, len(published))}
	for i := range published {
		p := published[i]
		t.profiles[p.Version] = &p
	}
	return t
}

// Lookup returns the profile for version or an unknown_version error.
func (t *Table) Lookup(version string) (*models.VersionProfile, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	p, ok := t.profiles[version]
	if !ok {
		return nil, errors.ErrUnknownVersion(version)
	}
	return p, nil
}

// Has reports whether version is registered.
func (t *Table) Has(version string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.profiles[version]
	return ok
}

// Versions lists registered versions, sorted.
func (t *Table) Versions() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.profiles))
	for v := range t.profiles {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Extend registers additional profiles. Existing versions are never replaced;
// the whole batch is rejected if any profile is invalid or already present.
func (t *Table) Extend(profiles ...models.VersionProfile) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	seen := make(map[string]bool, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		if err := p.Validate(); err != nil {
			return err
		}
		if _, ok := t.profiles[p.Version]; ok || seen[p.Version] {
			return fmt.Errorf("profile %s is already published", p.Version)
		}
		seen[p.Version] = true
	}
	for i := range profiles {
		p := profiles[i]
		t.profiles[p.Version] = &p
	}
	return nil
}

type profileFile struct {
	Profiles []models.VersionProfile `yaml:"profiles"`
}

// ReadFile parses a YAML list of profiles without registering them.
func ReadFile(path string) ([]models.VersionProfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles file: %w", err)
	}
	var f profileFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse profiles file: %w", err)
	}
	return f.Profiles, nil
}

// LoadFile reads a YAML list of profiles and registers them.
func (t *Table) LoadFile(path string) (int, error) {
	profiles, err := ReadFile(path)
	if err != nil {
		return 0, err
	}
	if err := t.Extend(profiles...); err != nil {
		return 0, err
	}
	return len(profiles), nil
}

// Reload registers the profiles of path that are not in the table yet.
// Entries for known versions are skipped, so edits to them have no effect.
func (t *Table) Reload(path string) (int, error) {
	profiles, err := ReadFile(path)
	if err != nil {
		return 0, err
	}
	fresh := profiles[:0]
	for _, p := range profiles {
		if !t.Has(p.Version) {
			fresh = append(fresh, p)
		}
	}
	if len(fresh) == 0 {
		return 0, nil
	}
	if err := t.Extend(fresh...); err != nil {
		return 0, err
	}
	return len(fresh), nil
}
