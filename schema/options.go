package schema

import (
	"github.com/arloliu/lasx/internal/options"
)

type config struct {
	legacyTypeFallback bool
}

// Option represents a functional option for configuring schema parsing.
// This is a type alias for the generic Option interface specialized for the
// parser configuration.
type Option = options.Option[*config]

// WithLegacyTypeFallback makes descriptor parsing resolve unknown data type
// codes to format.TypeF64 instead of failing, matching the permissive
// behavior of older readers. The raw type code is preserved on the
// descriptor either way.
func WithLegacyTypeFallback() Option {
	return options.NoError(func(c *config) {
		c.legacyTypeFallback = true
	})
}
