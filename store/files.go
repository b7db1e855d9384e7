package store

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/katalvlaran/desdiag/automaton"
)

// Ext is the file extension of persisted automata.
const Ext = ".dfa"

// ErrInvalidName is returned for names that are empty, contain a path
// separator or "..", or lack the Ext suffix.
var ErrInvalidName = errors.New("store: invalid file name")

// DefaultName derives "<yyyymmdd-hhmmss>_<tag>.dfa" from cfg and t, where
// tag is the unpadded URL-safe base64 of "s<states>:fs<faulty>:as<alphabet>:fes<faults>".
func DefaultName(cfg *automaton.Config, t time.Time) string {
	info := fmt.Sprintf("s%d:fs%d:as%d:fes%d",
		cfg.StateSize, cfg.FaultyStateSize, len(cfg.Alphabet), len(cfg.FaultyEvents))

	return t.Format("20060102-150405") + "_" + base64.RawURLEncoding.EncodeToString([]byte(info)) + Ext
}

func checkName(name string) error {
	if name == "" || name == "." || strings.Contains(name, "..") ||
		strings.ContainsAny(name, `/\`) || !strings.HasSuffix(name, Ext) {
		return fmt.Errorf("store: %q: %w", name, ErrInvalidName)
	}

	return nil
}

// SaveFile writes rec into dir, creating dir when needed. An empty name
// selects DefaultName(rec.Config, rec.CreatedAt). Returns the written path.
func SaveFile(dir, name string, rec *Record) (string, error) {
	if rec == nil || rec.Config == nil {
		return "", ErrNilRecord
	}
	if name == "" {
		name = DefaultName(rec.Config, rec.CreatedAt)
	}
	if err := checkName(name); err != nil {
		return "", err
	}
	data, err := Marshal(rec)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("store: SaveFile: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("store: SaveFile: %w", err)
	}

	return path, nil
}

// LoadFile reads the record dir/name.
func LoadFile(dir, name string) (*Record, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("store: LoadFile: %w", err)
	}

	return Unmarshal(data)
}

// List returns the names of the records in dir, sorted. A missing dir
// yields an empty list.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: List: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), Ext) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}
