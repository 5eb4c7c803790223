// SPDX-License-Identifier: GPL-2.0-or-later

package calc

import (
	_ "embed"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	gmath "geoaux/math"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config controls how a Session prints registers.
type Config struct {
	Precision      int  `yaml:"precision"`
	ShowDegrees    bool `yaml:"show_degrees"`
	NormalizePrint bool `yaml:"normalize_print"`
}

// maxPrecision is enough digits to round trip a float64
const maxPrecision = 17

// DefaultConfig returns the embedded defaults.
func DefaultConfig() Config {
	var c Config
	if err := yaml.Unmarshal(defaultsYAML, &c); err != nil {
		panic("calc: bad embedded defaults: " + err.Error())
	}
	return c
}

// LoadConfig reads the YAML file at path over the defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "parsing config %s", path)
	}
	c.Precision = gmath.Clamp(-1, c.Precision, maxPrecision)
	return c, nil
}
