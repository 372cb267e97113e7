package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/KaramelBytes/dataquery-cli/internal/dataset"
)

var (
	// ErrUnsupported indicates a file type no registered loader accepts.
	ErrUnsupported = errors.New("unsupported file type")
	// ErrTooFewColumns rejects tables that cannot be compared or charted.
	ErrTooFewColumns = errors.New("table needs at least 2 columns")
	// ErrNoRows rejects tables whose data lines were all dropped or absent.
	ErrNoRows = errors.New("table has no data rows")
)

// Loader turns file content into a Table.
type Loader interface {
	CanLoad(filename string) bool
	Load(name string, content []byte, opt dataset.Options) (*dataset.Table, error)
}

var registry []Loader

// Register adds a loader implementation to the registry.
func Register(l Loader) {
	registry = append(registry, l)
}

func init() {
	Register(csvLoader{})
}

// LoadFile reads path with the first loader that accepts it and rejects
// tables with fewer than two columns or no data rows.
func LoadFile(path string, opt dataset.Options) (*dataset.Table, error) {
	l, ok := find(path)
	if !ok {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupported)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}
	if opt.MaxInputBytes > 0 && info.Size() > int64(opt.MaxInputBytes) {
		return nil, fmt.Errorf("%s: %d bytes (limit %d): %w", filepath.Base(path), info.Size(), opt.MaxInputBytes, dataset.ErrInputTooLarge)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return load(l, filepath.Base(path), data, opt)
}

// LoadBytes is LoadFile for content already in memory; name selects the loader.
func LoadBytes(name string, content []byte, opt dataset.Options) (*dataset.Table, error) {
	l, ok := find(name)
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrUnsupported)
	}
	return load(l, name, content, opt)
}

func find(name string) (Loader, bool) {
	for _, l := range registry {
		if l.CanLoad(name) {
			return l, true
		}
	}
	return nil, false
}

func load(l Loader, name string, content []byte, opt dataset.Options) (*dataset.Table, error) {
	t, err := l.Load(name, content, opt)
	if err != nil {
		return nil, err
	}
	if len(t.Headers) < 2 {
		return nil, fmt.Errorf("%s: %d column(s): %w", name, len(t.Headers), ErrTooFewColumns)
	}
	if t.RowCount() == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoRows)
	}
	return t, nil
}
