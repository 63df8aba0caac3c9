package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/sortcell/internal/domain"
	portmocks "github.com/bnema/sortcell/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var sampleProfile = domain.DumpProfile{Name: "dump.txt", Points: []domain.ProfilePoint{{At: 0, Angle: 0}}}

func TestSourceLoadUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockProfileSource(t)
	fallback := portmocks.NewMockProfileSource(t)
	source, err := NewSource(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Load(mock.Anything, "dump.txt").Return(sampleProfile, nil).Once()

	got, err := source.Load(context.Background(), "dump.txt")
	require.NoError(t, err)
	assert.Equal(t, sampleProfile, got)
}

func TestSourceLoadFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockProfileSource(t)
	fallback := portmocks.NewMockProfileSource(t)
	source, err := NewSource(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Load(mock.Anything, "dump.txt").Return(domain.DumpProfile{}, errors.New("file missing")).Once()
	fallback.EXPECT().Load(mock.Anything, "dump.txt").Return(sampleProfile, nil).Once()

	got, err := source.Load(context.Background(), "dump.txt")
	require.NoError(t, err)
	assert.Equal(t, sampleProfile, got)
}

func TestSourceLoadReturnsCombinedErrorWhenBothFail(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockProfileSource(t)
	fallback := portmocks.NewMockProfileSource(t)
	source, err := NewSource(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Load(mock.Anything, "dump.txt").Return(domain.DumpProfile{}, errors.New("file failed")).Once()
	fallback.EXPECT().Load(mock.Anything, "dump.txt").Return(domain.DumpProfile{}, errors.New("builtin failed")).Once()

	_, err = source.Load(context.Background(), "dump.txt")
	require.Error(t, err)
	assert.ErrorContains(t, err, "primary source")
	assert.ErrorContains(t, err, "fallback source")
	assert.ErrorContains(t, err, "file failed")
	assert.ErrorContains(t, err, "builtin failed")
}

func TestSourceLoadDoesNotMaskMalformedPrimary(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockProfileSource(t)
	fallback := portmocks.NewMockProfileSource(t)
	source, err := NewSource(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Load(mock.Anything, "dump.txt").Return(domain.DumpProfile{}, domain.ErrMalformedProfile).Once()

	_, err = source.Load(context.Background(), "dump.txt")
	assert.ErrorIs(t, err, domain.ErrMalformedProfile)
}

func TestSourceLoadSkipsFallbackOnCanceledContext(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockProfileSource(t)
	fallback := portmocks.NewMockProfileSource(t)
	source, err := NewSource(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Load(mock.Anything, "dump.txt").Return(domain.DumpProfile{}, context.Canceled).Once()

	_, err = source.Load(context.Background(), "dump.txt")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewSourceRejectsNilSources(t *testing.T) {
	t.Parallel()

	_, err := NewSource(nil, portmocks.NewMockProfileSource(t))
	assert.ErrorIs(t, err, errNilPrimarySource)

	_, err = NewSource(portmocks.NewMockProfileSource(t), nil)
	assert.ErrorIs(t, err, errNilFallbackSource)
}
