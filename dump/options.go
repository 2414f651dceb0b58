package dump

import (
	"fmt"

	"github.com/arloliu/ringitem/format"
	"github.com/arloliu/ringitem/internal/options"
)

// Format selects the output encoding.
type Format uint8

const (
	FormatText Format = iota + 1
	FormatYAML
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat maps "text", "yaml" or "json" to a Format.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "text", "":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("unknown dump format %q", name)
	}
}

type config struct {
	format Format
	raw    bool
	types  map[format.ItemType]struct{}
}

// Option configures a Writer.
type Option = options.Option[*config]

// WithFormat selects the output format. Defaults to FormatText.
func WithFormat(f Format) Option {
	return options.New(func(c *config) error {
		switch f {
		case FormatText, FormatYAML, FormatJSON:
			c.format = f
			return nil
		default:
			return fmt.Errorf("invalid dump format: %d", f)
		}
	})
}

// WithTypes restricts output to the given item types. Repeated calls add to the set.
func WithTypes(types ...format.ItemType) Option {
	return options.NoError(func(c *config) {
		if c.types == nil {
			c.types = make(map[format.ItemType]struct{}, len(types))
		}
		for _, t := range types {
			c.types[t] = struct{}{}
		}
	})
}

// WithRaw includes the raw event bytes in hex.
func WithRaw(enabled bool) Option {
	return options.NoError(func(c *config) {
		c.raw = enabled
	})
}
