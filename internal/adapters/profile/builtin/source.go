// Package builtin serves the dump profile compiled into the binary.
package builtin

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"

	profilefile "github.com/bnema/sortcell/internal/adapters/profile/file"
	"github.com/bnema/sortcell/internal/domain"
	"github.com/bnema/sortcell/internal/ports"
)

//go:embed dump.txt
var defaultDump []byte

type Source struct{}

var _ ports.ProfileSource = Source{}

func (Source) Load(ctx context.Context, name string) (domain.DumpProfile, error) {
	if err := ctx.Err(); err != nil {
		return domain.DumpProfile{}, err
	}
	if name != domain.DefaultProfileName {
		return domain.DumpProfile{}, fmt.Errorf("%w: no built-in profile %q", profilefile.ErrProfileNotFound, name)
	}

	return profilefile.Parse(name, bytes.NewReader(defaultDump))
}
