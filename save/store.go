package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/pixel-survivor/components"
)

// FormatVersion is bumped on incompatible save layout changes
const FormatVersion = 1

// DefaultFileName is used when no path is configured
const DefaultFileName = "pixel_survivor_save.json"

// ErrNoSave means no save file exists yet
var ErrNoSave = errors.New("save: no saved game")

// GameSave is the persisted session: player, world seed and quest board
type GameSave struct {
	ID      string             `json:"id"`
	Version int                `json:"version"`
	SavedAt time.Time          `json:"savedAt"`
	Player  components.Player  `json:"player"`
	Seed    string             `json:"seed"`
	Quests  []components.Quest `json:"quests"`
}

// NewGameSave stamps a snapshot with a fresh ID and the current time
func NewGameSave(p components.Player, seed string, quests []components.Quest) GameSave {
	if quests == nil {
		quests = []components.Quest{}
	}
	return GameSave{
		ID:      uuid.NewString(),
		Version: FormatVersion,
		SavedAt: time.Now().UTC(),
		Player:  p,
		Seed:    seed,
		Quests:  quests,
	}
}

// JSONStore keeps a single save slot as a JSON file
type JSONStore struct {
	path string
}

// NewJSONStore stores at path, empty selects DefaultFileName in the working directory
func NewJSONStore(path string) *JSONStore {
	if path == "" {
		path = DefaultFileName
	}
	return &JSONStore{path: path}
}

// Path returns the save file location
func (s *JSONStore) Path() string {
	return s.path
}

// Save writes atomically through a temp file in the same directory
func (s *JSONStore) Save(gs GameSave) error {
	data, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		return fmt.Errorf("save encode: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".save-*.tmp")
	if err != nil {
		return fmt.Errorf("save temp: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("save write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save close: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save rename: %w", err)
	}
	return nil
}

// Load reads the save slot; ErrNoSave when nothing was saved
func (s *JSONStore) Load() (GameSave, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return GameSave{}, ErrNoSave
	}
	if err != nil {
		return GameSave{}, fmt.Errorf("save read: %w", err)
	}

	var gs GameSave
	if err := json.Unmarshal(data, &gs); err != nil {
		return GameSave{}, fmt.Errorf("save decode %s: %w", s.path, err)
	}
	if gs.Version > FormatVersion {
		return GameSave{}, fmt.Errorf("save version %d newer than supported %d", gs.Version, FormatVersion)
	}
	return gs, nil
}

// Exists reports whether a save file is present
func (s *JSONStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}
