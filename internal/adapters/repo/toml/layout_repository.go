package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/sortcell/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	LayoutPathKey    = "layout.path"
	layoutFileMode   = 0o644
	layoutDirMode    = 0o755
	layoutConfigDir  = ".sortcell"
	layoutConfigFile = "layout.toml"
	tempFilePattern  = ".layout-*.toml.tmp"
)

// LayoutRepository persists the workcell calibration as a versioned TOML file.
type LayoutRepository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

func NewLayoutRepository(cfg *viper.Viper) (*LayoutRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	if !cfg.IsSet(LayoutPathKey) {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.SetDefault(LayoutPathKey, filepath.Join(homeDir, layoutConfigDir, layoutConfigFile))
	}

	path := cfg.GetString(LayoutPathKey)
	if path == "" {
		return nil, errors.New("layout path is empty")
	}
	path, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &LayoutRepository{path: path, mu: lockForPath(path)}, nil
}

func (r *LayoutRepository) Path() string {
	return r.path
}

// Load returns the stored layout. Keys missing from the file keep their
// default calibration, and a missing file yields domain.DefaultLayout.
func (r *LayoutRepository) Load(ctx context.Context) (domain.Layout, error) {
	if err := ctx.Err(); err != nil {
		return domain.Layout{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Layout{}, err
	}

	layout, err := fromLayoutSchema(file)
	if err != nil {
		return domain.Layout{}, fmt.Errorf("decode layout file: %w", err)
	}
	if err := layout.Validate(); err != nil {
		return domain.Layout{}, fmt.Errorf("invalid layout %s: %w", r.path, err)
	}

	return layout, nil
}

func (r *LayoutRepository) Save(ctx context.Context, layout domain.Layout) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := layout.Validate(); err != nil {
		return fmt.Errorf("invalid layout: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.writeSchema(toLayoutSchema(layout))
}

func (r *LayoutRepository) Exists() bool {
	_, err := os.Stat(r.path)
	return err == nil
}

func (r *LayoutRepository) readSchema() (layoutSchema, error) {
	file := toLayoutSchema(domain.DefaultLayout())

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return file, nil
		}
		return layoutSchema{}, fmt.Errorf("read layout file: %w", err)
	}

	defaults := file
	file.Version = 0
	file.Slots = nil
	file.Bins = nil
	if err := toml.Unmarshal(data, &file); err != nil {
		return layoutSchema{}, fmt.Errorf("decode layout file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return layoutSchema{}, err
	}
	file.applyDefaults()

	if file.Slots == nil {
		file.Slots = defaults.Slots
	}
	if file.Bins == nil {
		file.Bins = defaults.Bins
	}

	return file, nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve layout path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *LayoutRepository) writeSchema(file layoutSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), layoutDirMode); err != nil {
		return fmt.Errorf("create layout directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode layout file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp layout file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp layout file: %w", err)
	}

	if err := tempFile.Chmod(layoutFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp layout file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp layout file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace layout file: %w", err)
	}

	cleanup = false

	return nil
}
