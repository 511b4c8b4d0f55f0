package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/omarshaarawi/playoffpool/internal/models"
	"github.com/omarshaarawi/playoffpool/internal/roster"
)

// DefaultRounds is the weighting used by the pool since it started. Week 4
// of the postseason is the Pro Bowl break, so the Super Bowl is week 5.
func DefaultRounds() models.RoundConfig {
	return models.RoundConfig{
		{Name: "Wildcard", Week: 1, Multiplier: 1},
		{Name: "Divisional", Week: 2, Multiplier: 1.5},
		{Name: "Conference", Week: 3, Multiplier: 2},
		{Name: "Super Bowl", Week: 5, Multiplier: 2.5},
	}
}

// RoundsFile is the YAML layout of ROUNDS_FILE.
type RoundsFile struct {
	Rounds         models.RoundConfig `yaml:"rounds"`
	Disambiguation map[string]string  `yaml:"disambiguation"`
}

// LoadRounds reads the round setup. An empty filename yields the defaults.
// Multiplier validation is left to the scoring engine.
func LoadRounds(filename string) (models.RoundConfig, roster.DisambiguationRules, error) {
	if filename == "" {
		return DefaultRounds(), roster.DefaultRules(), nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read rounds file: %w", err)
	}

	var rf RoundsFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal rounds file: %w", err)
	}

	for i, r := range rf.Rounds {
		if r.Week <= 0 {
			return nil, nil, fmt.Errorf("round %d (%q): week must be positive", i+1, r.Name)
		}
	}

	rules := roster.DefaultRules()
	for name, pos := range rf.Disambiguation {
		p := models.ParsePosition(pos)
		if p == models.PositionUnknown {
			return nil, nil, fmt.Errorf("disambiguation for %q: unknown position %q", name, pos)
		}
		rules[name] = p
	}

	return rf.Rounds, rules, nil
}
