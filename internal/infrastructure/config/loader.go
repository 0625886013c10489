package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const gameFile = "game.yaml"

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads game.yaml over the built-in defaults.
// Keys missing from the file keep their default value; unknown keys are an error.
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, gameFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", gameFile, err)
	}

	cfg := Default()
	if err := decodeStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", gameFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", gameFile, err)
	}

	return &cfg, nil
}

// LoadArena loads an arena YAML file
func (l *Loader) LoadArena(name string) (*ArenaConfig, error) {
	path := "arenas/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read arena %s: %w", name, err)
	}

	var cfg ArenaConfig
	if err := decodeStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse arena %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid arena %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadAll loads game.yaml and the named arena
func (l *Loader) LoadAll(arena string) (*GameConfig, *ArenaConfig, error) {
	game, err := l.LoadGame()
	if err != nil {
		return nil, nil, err
	}

	arenaCfg, err := l.LoadArena(arena)
	if err != nil {
		return nil, nil, err
	}

	return game, arenaCfg, nil
}

func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
