package state

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// FileState records the last import of a single archive post
type FileState struct {
	MTime  int64  `json:"mtime"`
	Hash   string `json:"hash"`
	Output string `json:"output"`
}

// RunInfo summarizes the most recent import run
type RunInfo struct {
	ID        string    `json:"id"`
	Finished  time.Time `json:"finished"`
	Converted int       `json:"converted"`
	Skipped   int       `json:"skipped"`
	Errors    int       `json:"errors"`
}

// State represents the import state
type State struct {
	Files   map[string]*FileState `json:"files"` // archive path -> state
	LastRun *RunInfo              `json:"last_run,omitempty"`
}

// NewState creates a new empty state
func NewState() *State {
	return &State{
		Files: make(map[string]*FileState),
	}
}

// Load reads state from the state file
func Load(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewState(), nil
		}
		return nil, err
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}

	if state.Files == nil {
		state.Files = make(map[string]*FileState)
	}

	return &state, nil
}

// Save writes state to the state file
func (s *State) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

// ComputeHash computes SHA256 hash of a file
func ComputeHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("sha256:%x", h.Sum(nil)), nil
}

// HasChanged checks if a post needs to be converted again.
// mtime is checked first and the hash only when mtime moved.
// A post whose recorded output no longer exists always counts as changed.
func (s *State) HasChanged(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	fileState, exists := s.Files[path]
	if !exists {
		return true, nil
	}

	if fileState.Output != "" {
		if _, err := os.Stat(fileState.Output); os.IsNotExist(err) {
			return true, nil
		}
	}

	if info.ModTime().Unix() == fileState.MTime {
		return false, nil
	}

	hash, err := ComputeHash(path)
	if err != nil {
		return false, err
	}

	return hash != fileState.Hash, nil
}

// Update records the current mtime and hash of path along with its output
func (s *State) Update(path string, output string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	hash, err := ComputeHash(path)
	if err != nil {
		return err
	}

	s.Files[path] = &FileState{
		MTime:  info.ModTime().Unix(),
		Hash:   hash,
		Output: output,
	}

	return nil
}

// Remove forgets a post, e.g. after it was deleted from the archive
func (s *State) Remove(path string) {
	delete(s.Files, path)
}

// Prune drops entries whose archive file no longer exists and returns their paths
func (s *State) Prune() []string {
	var removed []string
	for path := range s.Files {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			removed = append(removed, path)
			s.Remove(path)
		}
	}
	return removed
}
