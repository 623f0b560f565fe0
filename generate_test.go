package overlapwfc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	overlapwfc "github.com/jkuba/overlapwfc"
	"github.com/jkuba/overlapwfc/raster"
	"github.com/jkuba/overlapwfc/solver"
	"github.com/jkuba/overlapwfc/wfcconfig"
)

func TestGenerateSolidExemplarReachesSolution(t *testing.T) {
	exemplar, err := raster.New(4, 4, 3)
	require.NoError(t, err, "raster.New")
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			require.NoError(t, exemplar.Set(x, y, []byte{5, 6, 7}), "Set")
		}
	}

	cfg, err := wfcconfig.New(wfcconfig.WithPatternSize(3), wfcconfig.WithOutputSize(4, 4))
	require.NoError(t, err, "wfcconfig.New")

	result, err := overlapwfc.Generate(context.Background(), exemplar, cfg)
	require.NoError(t, err, "Generate")
	assert.Equal(t, solver.Solution, result.Status, "a solid exemplar must always solve")
	assert.Equal(t, 4, result.Output.W, "output width")
	assert.Equal(t, 4, result.Output.H, "output height")

	// Every output pixel of a single-pattern run equals the exemplar's colour.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			px, err := result.Output.At(x, y)
			require.NoError(t, err, "At")
			assert.Equal(t, []byte{5, 6, 7}, []byte(px), "pixel (%d,%d)", x, y)
		}
	}
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	exemplar, err := raster.New(4, 4, 3)
	require.NoError(t, err, "raster.New")
	cfg, err := wfcconfig.New(wfcconfig.WithOutputSize(4, 4))
	require.NoError(t, err, "wfcconfig.New")
	cfg.Analyzer.PatternSize = 0

	_, err = overlapwfc.Generate(context.Background(), exemplar, cfg)
	assert.ErrorIs(t, err, wfcconfig.ErrInvalidPatternSize, "Generate must re-validate its config")
}
