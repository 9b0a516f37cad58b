// Package knowledge persists the decision tree and the play statistics
// as JSON documents under a data directory. The tree file is the game's
// entire memory, so every write goes through a temp-file rename and a
// corrupt file is surfaced, never silently replaced with the default.
package knowledge

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abhisek/kinator/internal/game"
	"github.com/abhisek/kinator/internal/tree"
)

const (
	treeFile  = "knowledge.json"
	statsFile = "stats.json"
)

var (
	// ErrCorruptData marks a persisted document that exists but does
	// not parse as a well-formed tree or stats record.
	ErrCorruptData = errors.New("persisted data is corrupt")

	// ErrInvalidFormat marks an imported document that is not a
	// well-formed tree.
	ErrInvalidFormat = errors.New("invalid knowledge format")
)

// Store reads and writes the knowledge files under a single directory.
type Store struct {
	dir string
}

// Open returns a Store rooted at dir, creating the directory if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory backing this store.
func (s *Store) Dir() string { return s.dir }

// TreePath returns the location of the persisted tree.
func (s *Store) TreePath() string { return filepath.Join(s.dir, treeFile) }

// StatsPath returns the location of the persisted statistics.
func (s *Store) StatsPath() string { return filepath.Join(s.dir, statsFile) }

// LoadTree returns the persisted tree. On first run it materializes and
// persists the built-in default tree. A file that exists but does not
// parse is reported as ErrCorruptData.
func (s *Store) LoadTree() (tree.Node, error) {
	data, err := os.ReadFile(s.TreePath())
	if errors.Is(err, os.ErrNotExist) {
		root := tree.Default()
		if err := s.SaveTree(root); err != nil {
			return nil, fmt.Errorf("bootstrap default tree: %w", err)
		}
		return root, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read tree: %w", err)
	}

	root, err := tree.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptData, s.TreePath(), err)
	}
	return root, nil
}

// SaveTree overwrites the persisted tree. The write is atomic: a crash
// never leaves a truncated file behind.
func (s *Store) SaveTree(root tree.Node) error {
	data, err := tree.Marshal(root)
	if err != nil {
		return err
	}
	if err := writeAtomic(s.TreePath(), data); err != nil {
		return fmt.Errorf("write tree: %w", err)
	}
	return nil
}

// LoadStats returns the persisted statistics, zeroed counters when no
// file exists yet.
func (s *Store) LoadStats() (game.Stats, error) {
	var stats game.Stats
	data, err := os.ReadFile(s.StatsPath())
	if errors.Is(err, os.ErrNotExist) {
		if err := s.SaveStats(stats); err != nil {
			return stats, fmt.Errorf("bootstrap stats: %w", err)
		}
		return stats, nil
	}
	if err != nil {
		return stats, fmt.Errorf("read stats: %w", err)
	}
	if err := json.Unmarshal(data, &stats); err != nil {
		return game.Stats{}, fmt.Errorf("%w: %s: %v", ErrCorruptData, s.StatsPath(), err)
	}
	if stats.Played < 0 || stats.Wins < 0 || stats.Learned < 0 {
		return game.Stats{}, fmt.Errorf("%w: %s: negative counter", ErrCorruptData, s.StatsPath())
	}
	return stats, nil
}

// SaveStats overwrites the persisted statistics.
func (s *Store) SaveStats(stats game.Stats) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	if err := writeAtomic(s.StatsPath(), append(data, '\n')); err != nil {
		return fmt.Errorf("write stats: %w", err)
	}
	return nil
}

// ImportTree parses externally supplied data, and on success replaces
// and persists the active tree. A document whose root is not a
// well-formed tree node fails with ErrInvalidFormat and leaves the
// persisted tree untouched.
func (s *Store) ImportTree(data []byte) (tree.Node, error) {
	if err := validateTreeDocument(data); err != nil {
		return nil, err
	}
	root, err := tree.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if err := s.SaveTree(root); err != nil {
		return nil, err
	}
	return root, nil
}

// ExportTree writes the tree to dest in the same serialized form used
// by SaveTree.
func (s *Store) ExportTree(root tree.Node, dest string) error {
	data, err := tree.Marshal(root)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// Reset replaces the persisted tree with the built-in default and
// returns the fresh tree.
func (s *Store) Reset() (tree.Node, error) {
	root := tree.Default()
	if err := s.SaveTree(root); err != nil {
		return nil, err
	}
	return root, nil
}

// writeAtomic writes data to a temp file in the target directory and
// renames it over path.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

// DefaultDataDir resolves the data directory in priority order:
// KINATOR_DATA, then $XDG_DATA_HOME/kinator, then
// ~/.local/share/kinator.
func DefaultDataDir() (string, error) {
	if p := os.Getenv("KINATOR_DATA"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "kinator"), nil
}
