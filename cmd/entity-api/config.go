package main

import (
	"fmt"
	"io"

	"github.com/bookbrainz/entity-api/pkg/entities"
	yaml "gopkg.in/yaml.v2"
)

// Config selects which entity kinds a deployment exposes. Kinds not listed
// here get no routes; adding one is purely additive.
type Config struct {
	EntityKindNames []string `yaml:"entityKinds"`
}

func DefaultConfig() *Config {
	return &Config{
		EntityKindNames: []string{string(entities.KindEdition)},
	}
}

func LoadConfiguration(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(buf, cfg)
	if err != nil {
		return nil, err
	}

	for _, name := range cfg.EntityKindNames {
		if !entities.Kind(name).Valid() {
			return nil, fmt.Errorf("unknown entity kind %q in configuration", name)
		}
	}

	return cfg, nil
}

func (c Config) EntityKinds() []entities.Kind {
	kinds := make([]entities.Kind, 0, len(c.EntityKindNames))
	for _, name := range c.EntityKindNames {
		kinds = append(kinds, entities.Kind(name))
	}
	return kinds
}
