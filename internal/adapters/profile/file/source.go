package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/sortcell/internal/domain"
	"github.com/bnema/sortcell/internal/ports"
)

// Source loads dump profiles from text files under a root directory.
type Source struct {
	root string
	mu   sync.RWMutex
}

var _ ports.ProfileSource = (*Source)(nil)

var ErrProfileNotFound = errors.New("dump profile not found")

func NewSource(root string) *Source {
	return &Source{root: filepath.Clean(root)}
}

func (s *Source) Load(ctx context.Context, name string) (domain.DumpProfile, error) {
	if err := ctx.Err(); err != nil {
		return domain.DumpProfile{}, err
	}

	path, err := s.pathForName(name)
	if err != nil {
		return domain.DumpProfile{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DumpProfile{}, fmt.Errorf("%w: %q in %s", ErrProfileNotFound, name, s.root)
		}
		return domain.DumpProfile{}, fmt.Errorf("open dump profile %q: %w", name, err)
	}
	defer f.Close()

	return Parse(name, f)
}

// Save writes profile under name, replacing any existing file.
func (s *Source) Save(ctx context.Context, name string, profile domain.DumpProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := profile.Validate(); err != nil {
		return err
	}

	path, err := s.pathForName(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create profile directory: %w", err)
	}

	var b strings.Builder
	if err := Format(&b, profile); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write dump profile %q: %w", name, err)
	}

	return nil
}

func (s *Source) pathForName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", errors.New("profile name is empty")
	}

	cleaned := filepath.Clean(trimmed)
	if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") || cleaned == "." {
		return "", fmt.Errorf("invalid profile name %q", name)
	}

	return filepath.Join(s.root, cleaned), nil
}
