package mock

import "github.com/limegreen-studio/studio"

var _ studio.Converter = (*Converter)(nil)

// Converter is a mock implementation of studio.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
