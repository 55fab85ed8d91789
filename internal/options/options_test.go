package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type frameConfig struct {
	width     int
	bigEndian bool
	calls     []string
}

func (c *frameConfig) setWidth(w int) error {
	if w <= 0 {
		return errors.New("width must be positive")
	}
	c.width = w
	c.calls = append(c.calls, "width")

	return nil
}

func TestNew(t *testing.T) {
	cfg := &frameConfig{}

	opt := New(func(c *frameConfig) error { return c.setWidth(640) })
	require.NoError(t, opt.apply(cfg))
	require.Equal(t, 640, cfg.width)

	bad := New(func(c *frameConfig) error { return c.setWidth(0) })
	require.Error(t, bad.apply(cfg))
	require.Equal(t, 640, cfg.width)
}

func TestNoError(t *testing.T) {
	cfg := &frameConfig{}

	opt := NoError(func(c *frameConfig) { c.bigEndian = true })
	require.NoError(t, opt.apply(cfg))
	require.True(t, cfg.bigEndian)
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &frameConfig{}
		err := Apply(cfg,
			New(func(c *frameConfig) error { return c.setWidth(320) }),
			NoError(func(c *frameConfig) { c.calls = append(c.calls, "endian") }),
			New(func(c *frameConfig) error { return c.setWidth(640) }),
		)
		require.NoError(t, err)
		require.Equal(t, 640, cfg.width)
		require.Equal(t, []string{"width", "endian", "width"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &frameConfig{}
		err := Apply(cfg,
			New(func(c *frameConfig) error { return c.setWidth(-1) }),
			NoError(func(c *frameConfig) { c.bigEndian = true }),
		)
		require.Error(t, err)
		require.False(t, cfg.bigEndian)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &frameConfig{}
		require.NoError(t, Apply[*frameConfig](cfg, nil))
	})

	t.Run("no options", func(t *testing.T) {
		require.NoError(t, Apply(&frameConfig{}))
	})
}
