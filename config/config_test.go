package config

import (
	"testing"

	"github.com/deitrix/tetra/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("tetra", nil, env(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 50.0, cfg.Gesture.Swipe)
	assert.Equal(t, 10.0, cfg.Gesture.Tap)
	assert.Equal(t, input.HardDrop, cfg.Bindings.Lookup("space"))
}

func TestLoad_EnvThenFlags(t *testing.T) {
	vars := map[string]string{
		EnvSeed:     "7",
		EnvCellSize: "24",
		EnvLog:      "/tmp/tetra.log",
		EnvDebug:    "true",
	}
	cfg, err := Load("tetra", []string{"-cell", "40", "-bind", "z=hold", "-bind", "x=none", "-tap", "5"}, env(vars))
	require.NoError(t, err)

	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 40, cfg.CellSize, "flag wins over env")
	assert.Equal(t, "/tmp/tetra.log", cfg.LogPath)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 5.0, cfg.Gesture.Tap)
	assert.Equal(t, input.Hold, cfg.Bindings.Lookup("z"))
	assert.Equal(t, input.None, cfg.Bindings.Lookup("x"))
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		desc string
		args []string
		env  map[string]string
	}{
		{desc: "bad seed env", env: map[string]string{EnvSeed: "abc"}},
		{desc: "bad cell env", env: map[string]string{EnvCellSize: "big"}},
		{desc: "bad debug env", env: map[string]string{EnvDebug: "maybe"}},
		{desc: "unknown flag", args: []string{"-nope"}},
		{desc: "bad binding", args: []string{"-bind", "z=fly"}},
		{desc: "tiny cells", args: []string{"-cell", "2"}},
		{desc: "no ticks", args: []string{"-tps", "0"}},
		{desc: "tap above swipe", args: []string{"-tap", "60"}},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			_, err := Load("tetra", test.args, env(test.env))
			assert.Error(t, err)
		})
	}
}

func TestDefault_BindingsAreFresh(t *testing.T) {
	a := Default()
	require.NoError(t, a.Bindings.Set("a=hold"))
	assert.Equal(t, input.MoveLeft, Default().Bindings.Lookup("a"))
}
