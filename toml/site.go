// Package toml loads site settings from TOML files.
package toml

import (
	"errors"
	"fmt"
	"os"

	"github.com/limegreen-studio/studio"
	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the settings file looked up in the content root.
const DefaultPath = "studio.toml"

// LoadSite reads site settings from path. Keys absent from the file keep
// their studio.DefaultSite values; unknown keys are rejected.
func LoadSite(path string) (studio.Site, error) {
	site := studio.DefaultSite()

	f, err := os.Open(path)
	if err != nil {
		return studio.Site{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&site); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return studio.Site{}, studio.Errorf(studio.EINVALID, "config %s: %s", path, strict.String())
		}
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return studio.Site{}, studio.Errorf(studio.EINVALID, "config %s:%d:%d: %s", path, row, col, decodeErr.Error())
		}
		return studio.Site{}, fmt.Errorf("decode config: %w", err)
	}

	if err := site.Validate(); err != nil {
		return studio.Site{}, err
	}
	return site, nil
}

// LoadSiteIfExists is LoadSite, except that a missing file yields the
// default settings.
func LoadSiteIfExists(path string) (studio.Site, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return studio.DefaultSite(), nil
	}
	return LoadSite(path)
}
