// Package config loads observing-site and output settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/litescript/ls-sunpos/internal/ephem"
)

// Config is the configuration data as present in a config file at
// '${LS_SUNPOS_CONFIG}' (default '~/.config/ls-sunpos/config.yaml').
type Config struct {
	DefaultSite string `yaml:"default-site"`
	Sites       []Site `yaml:"sites"`
	Output      Output `yaml:"output"`
}

// A Site is an observing location as defined in a config file.
// Coordinates are geographic degrees, east and north positive. Pressure and
// temperature feed the refraction correction; zero means the reference
// atmosphere (101 kPa, 283 K).
type Site struct {
	Name        string  `yaml:"name"`
	Latitude    float64 `yaml:"latitude"`
	Longitude   float64 `yaml:"longitude"`
	Pressure    float64 `yaml:"pressure,omitempty"`
	Temperature float64 `yaml:"temperature,omitempty"`
}

// Output selects the angle conventions and optional fields of the results.
type Output struct {
	NorthZeroAzimuth bool `yaml:"north-zero-azimuth"`
	Degrees          bool `yaml:"degrees"`
	RefractedEq      bool `yaml:"refracted-equatorial"`
	Distance         bool `yaml:"distance"`
}

// Observer converts the site into the coordinates the solver consumes.
// With Options.UseDegrees set the solver takes the geographic degrees as-is.
func (s Site) Observer() ephem.Observer {
	return ephem.Observer{
		Longitude: s.Longitude,
		Latitude:  s.Latitude,
		Atmosphere: ephem.Atmosphere{
			Pressure:    s.Pressure,
			Temperature: s.Temperature,
		},
	}
}

// Options converts the output settings into solver options.
func (o Output) Options() ephem.Options {
	return ephem.Options{
		UseDegrees:            o.Degrees,
		UseNorthEqualsZero:    o.NorthZeroAzimuth,
		ComputeRefrEquatorial: o.RefractedEq,
		ComputeDistance:       o.Distance,
	}
}

// Default returns the built-in configuration: a single site and the
// conventional output settings (degrees, azimuth counted from north).
func Default() Config {
	return Config{
		DefaultSite: "arnhem",
		Sites: []Site{
			{Name: "arnhem", Latitude: 51.987380, Longitude: 5.950270},
		},
		Output: Output{
			NorthZeroAzimuth: true,
			Degrees:          true,
			RefractedEq:      false,
			Distance:         true,
		},
	}
}

// Parse parses YAML-formatted data and uses it to augment the default
// configuration. Sites replace the defaults wholesale when given.
func Parse(yamlData []byte) (Config, error) {
	result := Default()

	var parsed Config
	if err := yaml.Unmarshal(yamlData, &parsed); err != nil {
		return result, fmt.Errorf("error unmarshaling yaml (%s)", err)
	}

	if parsed.DefaultSite != "" {
		result.DefaultSite = parsed.DefaultSite
	}
	if len(parsed.Sites) > 0 {
		result.Sites = parsed.Sites
	}
	result.Output = parsed.Output.augmentWith(result.Output)

	return result, nil
}

// Load reads and parses the config file at path. A missing file yields the
// defaults without error; a present but malformed file is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("error reading config file (%s)", err)
	}
	return Parse(data)
}

// Lookup finds a site by name, falling back to the default site for the
// empty string.
func (c Config) Lookup(name string) (Site, error) {
	if name == "" {
		name = c.DefaultSite
	}
	for _, s := range c.Sites {
		if s.Name == name {
			return s, nil
		}
	}
	return Site{}, fmt.Errorf("no site named %q in configuration", name)
}

func (parsed Output) augmentWith(base Output) Output {
	// YAML booleans cannot distinguish "false" from "absent", so an output
	// block in the file replaces the block as a whole.
	zero := Output{}
	if parsed == zero {
		return base
	}
	return parsed
}
