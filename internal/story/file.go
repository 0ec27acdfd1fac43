package story

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"inkwell/internal/fileutil"
)

// Load reads and decodes the story config at path. A missing file yields
// ErrMissing; a present but undecodable or invalid file yields ErrCorrupt.
// Neither is ever auto-repaired.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissing, path)
		}
		return nil, fmt.Errorf("read story config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}
	return &cfg, nil
}

// Save validates cfg and overwrites the whole file atomically. Callers must
// set UpdatedAt to the current time before saving a mutation.
func Save(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("save story config: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode story config: %w", err)
	}
	data = append(data, '\n')
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write story config: %w", err)
	}
	return nil
}
