package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"comboplay/internal/util"
	"comboplay/pkg/card"
	"comboplay/pkg/deck"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the agent
type Config struct {
	loaded bool
	Log    struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`
	Agent   Agent        `yaml:"agent"`
	Catalog card.Catalog `yaml:"catalog" ignored:"true"`
}

// Agent configures the turn decision loop
type Agent struct {
	// DivisiveThreshold is the current total below which divisive plays are also considered
	DivisiveThreshold float64 `yaml:"divisiveThreshold" envconfig:"divisive_threshold"`

	// MaxHandSize caps the number of cards searched per turn, 0 disables the cap
	MaxHandSize int `yaml:"maxHandSize" envconfig:"max_hand_size"`

	// HandSize is the number of cards dealt when no hand is supplied
	HandSize int `yaml:"handSize" envconfig:"hand_size"`

	// Deck is a fixed deck list. When empty, one of DeckOptions is picked at random.
	Deck        deck.List   `yaml:"deck" envconfig:"deck"`
	DeckOptions []deck.List `yaml:"deckOptions" ignored:"true"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	c := Config{
		Agent: Agent{
			DivisiveThreshold: -15,
			MaxHandSize:       7,
			HandSize:          5,
			DeckOptions: []deck.List{
				{"plus1": 2, "plus5": 5, "plus10": 4, "mult10": 4},
				{"plus1": 2, "plus5": 5, "plus10": 1, "mult3": 1, "mult10": 4, "div5": 1, "div10": 1},
			},
		},
		Catalog: card.DefaultCatalog(),
	}
	c.Log.Level = "info"

	return c
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values from the YAML file override the defaults and environment variables override both.
// A missing configuration file is not an error.
func Load() error {
	c := DefaultConfig()

	configFile := util.Getenv("COMBOPLAY_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	}

	if err := envconfig.Process("comboplay", &c); err != nil {
		return err
	}

	if err := c.Validate(); err != nil {
		return err
	}

	c.loaded = true
	config = c
	return nil
}

// Validate returns an error if the configuration cannot be used
func (c Config) Validate() error {
	if err := c.Catalog.Validate(); err != nil {
		return err
	}

	if c.Agent.MaxHandSize < 0 {
		return fmt.Errorf("agent.maxHandSize must be >= 0, got %d", c.Agent.MaxHandSize)
	}

	if c.Agent.HandSize <= 0 {
		return fmt.Errorf("agent.handSize must be > 0, got %d", c.Agent.HandSize)
	}

	lists := append([]deck.List{c.Agent.Deck}, c.Agent.DeckOptions...)
	for _, list := range lists {
		for _, name := range list.Names() {
			if _, ok := c.Catalog.Lookup(name); !ok {
				return fmt.Errorf("%w: %s", deck.ErrUnknownCard, name)
			}
		}
	}

	if len(c.Agent.Deck) == 0 && len(c.Agent.DeckOptions) == 0 {
		return errors.New("agent needs a deck or at least one deck option")
	}

	return nil
}
