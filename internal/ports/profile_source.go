package ports

import (
	"context"

	"github.com/bnema/sortcell/internal/domain"
)

type ProfileSource interface {
	Load(ctx context.Context, name string) (domain.DumpProfile, error)
}
