package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/sortcell/internal/domain"
	"github.com/bnema/sortcell/internal/ports"
)

// Source tries primary first and falls back when it fails.
type Source struct {
	primary  ports.ProfileSource
	fallback ports.ProfileSource
}

var _ ports.ProfileSource = (*Source)(nil)

var (
	errNilPrimarySource  = errors.New("primary profile source is nil")
	errNilFallbackSource = errors.New("fallback profile source is nil")
)

func NewSource(primary ports.ProfileSource, fallback ports.ProfileSource) (*Source, error) {
	if primary == nil {
		return nil, errNilPrimarySource
	}
	if fallback == nil {
		return nil, errNilFallbackSource
	}

	return &Source{primary: primary, fallback: fallback}, nil
}

func (s *Source) Load(ctx context.Context, name string) (domain.DumpProfile, error) {
	profile, err := s.primary.Load(ctx, name)
	if err == nil {
		return profile, nil
	}
	if shouldSkipFallback(err) {
		return domain.DumpProfile{}, err
	}

	fallbackProfile, fallbackErr := s.fallback.Load(ctx, name)
	if fallbackErr == nil {
		return fallbackProfile, nil
	}

	return domain.DumpProfile{}, fmt.Errorf("primary source load failed: %w; fallback source load failed: %w", err, fallbackErr)
}

// A malformed primary profile is reported rather than masked by the fallback.
func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, domain.ErrMalformedProfile)
}
