package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/iliyamo/seat-booking/internal/model"
)

const appDirName = "seat-booking"

// FileRepository stores each key as a JSON file in one directory, the
// server-side stand-in for per-browser local storage.
type FileRepository struct {
	dir string
}

// NewFileRepository stores files under dir.  An empty dir resolves to
// the user config directory.
func NewFileRepository(dir string) (*FileRepository, error) {
	if strings.TrimSpace(dir) == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, appDirName)
	}
	return &FileRepository{dir: dir}, nil
}

type fileEnvelope struct {
	Records []model.Booking `json:"records"`
}

func (r *FileRepository) Load(_ context.Context, key string) ([]model.Booking, error) {
	data, err := os.ReadFile(r.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var env fileEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.New("invalid booking file format")
	}
	return env.Records, nil
}

func (r *FileRepository) Save(_ context.Context, key string, records []model.Booking) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(fileEnvelope{Records: records}, "", "  ")
	if err != nil {
		return err
	}
	// write-then-rename so readers never see a half-written list
	tmp := r.path(key) + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, r.path(key))
}

func (r *FileRepository) path(key string) string {
	return filepath.Join(r.dir, fileName(key))
}

// fileName maps a storage key to a safe file name.
func fileName(key string) string {
	var b strings.Builder
	for _, ch := range key {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9', ch == '-', ch == '.':
			b.WriteRune(ch)
		default:
			b.WriteRune('_')
		}
	}
	return b.String() + ".json"
}
