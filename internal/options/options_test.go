package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// parserConfig mimics the kind of config struct lasx packages drive through
// this package.
type parserConfig struct {
	MaxRecords int
	Strict     bool
	Label      string
}

func (c *parserConfig) setMaxRecords(n int) error {
	if n <= 0 {
		return errors.New("max records must be positive")
	}
	c.MaxRecords = n

	return nil
}

func TestNew(t *testing.T) {
	t.Run("applies function", func(t *testing.T) {
		cfg := &parserConfig{}
		opt := New(func(c *parserConfig) error {
			return c.setMaxRecords(64)
		})

		err := opt.apply(cfg)
		require.NoError(t, err)
		require.Equal(t, 64, cfg.MaxRecords)
	})

	t.Run("propagates errors", func(t *testing.T) {
		cfg := &parserConfig{}
		opt := New(func(c *parserConfig) error {
			return c.setMaxRecords(-1)
		})

		err := opt.apply(cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "must be positive")
	})
}

func TestNoError(t *testing.T) {
	cfg := &parserConfig{}
	opt := NoError(func(c *parserConfig) {
		c.Strict = true
	})

	err := opt.apply(cfg)
	require.NoError(t, err)
	require.True(t, cfg.Strict)
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &parserConfig{}
		err := Apply(cfg,
			NoError(func(c *parserConfig) { c.Label = "first" }),
			New(func(c *parserConfig) error { return c.setMaxRecords(8) }),
			NoError(func(c *parserConfig) { c.Label = "second" }),
		)

		require.NoError(t, err)
		require.Equal(t, 8, cfg.MaxRecords)
		require.Equal(t, "second", cfg.Label)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &parserConfig{}
		err := Apply(cfg,
			New(func(c *parserConfig) error { return c.setMaxRecords(-1) }),
			NoError(func(c *parserConfig) { c.Label = "unreached" }),
		)

		require.Error(t, err)
		require.Empty(t, cfg.Label)
	})

	t.Run("no options is a no-op", func(t *testing.T) {
		cfg := &parserConfig{MaxRecords: 3}
		require.NoError(t, Apply(cfg))
		require.Equal(t, 3, cfg.MaxRecords)
	})
}
