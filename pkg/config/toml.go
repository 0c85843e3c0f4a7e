package config

import (
	"github.com/arthur-debert/svgset/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// ToTOML renders the configuration in the same layout as svgset.toml
func (c *Config) ToTOML() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return string(data), nil
}
