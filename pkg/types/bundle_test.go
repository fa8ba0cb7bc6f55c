package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atari-vcs/atari-bundle/pkg/types"
)

func TestParseBundleType(t *testing.T) {
	for _, want := range []types.BundleType{types.Game, types.Application, types.LauncherOnly} {
		got, err := types.ParseBundleType(want.String())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, bad := range []string{"game", "GAME", "Launcher", "", "Game "} {
		_, err := types.ParseBundleType(bad)
		assert.ErrorIs(t, err, types.ErrInvalidBundleType, "input %q", bad)
	}
}

func TestBundleTypeText(t *testing.T) {
	b, err := json.Marshal(types.BundleConfig{Bundle: types.Bundle{Name: "x", Type: types.LauncherOnly}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Bundle":{"Name":"x","Type":"LauncherOnly"}}`, string(b))

	var cfg types.BundleConfig
	require.NoError(t, json.Unmarshal(b, &cfg))
	assert.Equal(t, types.LauncherOnly, cfg.Bundle.Type)

	_, err = types.BundleType(7).MarshalText()
	assert.ErrorIs(t, err, types.ErrInvalidBundleType)
	assert.Equal(t, "BundleType(7)", types.BundleType(7).String())
}
