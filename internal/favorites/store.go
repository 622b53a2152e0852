// Package favorites persists the ordered list of saved location names.
//
// The on-disk format is a single JSON array of strings; every mutation
// rewrites the whole file. The tool is single-user and single-process, so
// there is no locking.
package favorites

import (
	"encoding/json"
	"log/slog"
	"os"
	"slices"
)

// Store is the in-memory favorites list bound to its backing file. Order is
// insertion order; names are unique by case-sensitive exact match.
type Store struct {
	path  string
	names []string
}

// Load reads the favorites file at path. A missing file and malformed
// content both yield an empty store; the favorites list is never a reason
// to fail a command.
func Load(path string) *Store {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}

	if err := json.Unmarshal(data, &s.names); err != nil {
		slog.Warn("ignoring malformed favorites file",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)

		s.names = nil
	}

	return s
}

// Names returns a copy of the current list without re-reading disk.
func (s *Store) Names() []string {
	return slices.Clone(s.names)
}

// Contains reports whether name is already saved.
func (s *Store) Contains(name string) bool {
	return slices.Contains(s.names, name)
}

// Add appends name if absent and persists the full list. It reports whether
// the list changed; adding an existing name is a no-op.
func (s *Store) Add(name string) (bool, error) {
	if slices.Contains(s.names, name) {
		return false, nil
	}

	s.names = append(s.names, name)

	return true, s.save()
}

// Remove drops name from the list and persists on change.
func (s *Store) Remove(name string) (bool, error) {
	i := slices.Index(s.names, name)
	if i < 0 {
		return false, nil
	}

	s.names = slices.Delete(s.names, i, i+1)

	return true, s.save()
}

func (s *Store) save() error {
	// Marshal a non-nil slice so an emptied list writes [] instead of null.
	names := s.names
	if names == nil {
		names = []string{}
	}

	data, err := json.Marshal(names)
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0o644)
}
