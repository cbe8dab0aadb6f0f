package puzzle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultHighScoreKey is the name the high score is stored under.
const DefaultHighScoreKey = "highScore"

// HighScoreStore persists named integer scores across sessions.
type HighScoreStore interface {
	// Load returns the stored value, or zero when nothing is stored yet.
	Load(key string) (int, error)
	Save(key string, value int) error
}

// MemoryStore keeps scores in process memory.
type MemoryStore struct {
	mu     sync.Mutex
	scores map[string]int
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scores: make(map[string]int)}
}

func (m *MemoryStore) Load(key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scores[key], nil
}

func (m *MemoryStore) Save(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores[key] = value
	return nil
}

// FileStore keeps scores in a YAML document mapping names to values. A
// missing file reads as an empty store.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a store backed by the file at path. The file is
// created on the first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file.
func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) Load(key string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	scores, err := f.read()
	if err != nil {
		return 0, err
	}
	return scores[key], nil
}

func (f *FileStore) Save(key string, value int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	scores, err := f.read()
	if err != nil {
		return err
	}
	scores[key] = value

	data, err := yaml.Marshal(scores)
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}

	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create score dir: %w", err)
		}
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write scores: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace scores: %w", err)
	}
	return nil
}

func (f *FileStore) read() (map[string]int, error) {
	scores := make(map[string]int)

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return scores, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read scores: %w", err)
	}

	if err := yaml.Unmarshal(data, &scores); err != nil {
		return nil, fmt.Errorf("decode scores %s: %w", f.path, err)
	}
	if scores == nil {
		scores = make(map[string]int)
	}
	return scores, nil
}
