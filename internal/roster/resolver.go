package roster

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/omarshaarawi/playoffpool/internal/models"
)

const suggestionThreshold = 0.7

// DisambiguationRules pins a shared display name to the position that
// should win when the directory holds players of different positions
// under that name.
type DisambiguationRules map[string]models.Position

// DefaultRules covers the collision seen in past pools.
func DefaultRules() DisambiguationRules {
	return DisambiguationRules{
		"Lamar Jackson": models.PositionQB,
	}
}

// AmbiguousPlayerError is returned when a name matches directory entries
// at different positions and no rule picks one.
type AmbiguousPlayerError struct {
	Name      string
	Positions []models.Position
}

func (e *AmbiguousPlayerError) Error() string {
	positions := make([]string, len(e.Positions))
	for i, p := range e.Positions {
		positions[i] = string(p)
	}
	return fmt.Sprintf("ambiguous player %q: matches positions %s", e.Name, strings.Join(positions, ", "))
}

type Resolver struct {
	dir     *Directory
	aliases models.AliasTable
	rules   DisambiguationRules
	logger  *slog.Logger
}

func NewResolver(dir *Directory, aliases models.AliasTable, rules DisambiguationRules, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}

	a := make(models.AliasTable, len(aliases))
	for k, v := range aliases {
		a[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	r := make(DisambiguationRules, len(rules))
	for k, v := range rules {
		r[k] = v
	}

	return &Resolver{dir: dir, aliases: a, rules: r, logger: logger}
}

// Resolve maps raw roster cells onto directory players. The result has the
// same length and order as raw; names that match nothing come back as
// Unknown placeholders.
func (r *Resolver) Resolve(raw []string) ([]models.Player, error) {
	players := make([]models.Player, len(raw))
	for i, cell := range raw {
		p, err := r.resolveName(r.canonicalName(cell))
		if err != nil {
			return nil, err
		}
		players[i] = p
	}
	return players, nil
}

// ResolveAll resolves every team in the table, ordered by team name.
func (r *Resolver) ResolveAll(table models.RosterTable) ([]models.RosterEntry, error) {
	teams := make([]string, 0, len(table))
	for team := range table {
		teams = append(teams, team)
	}
	sort.Strings(teams)

	entries := make([]models.RosterEntry, 0, len(teams))
	for _, team := range teams {
		players, err := r.Resolve(table[team])
		if err != nil {
			return nil, fmt.Errorf("resolving roster for %s: %w", team, err)
		}
		entries = append(entries, models.RosterEntry{Team: team, Players: players})
	}
	return entries, nil
}

func (r *Resolver) canonicalName(cell string) string {
	name := strings.TrimSpace(cell)
	if canonical, ok := r.aliases[name]; ok {
		return canonical
	}
	return name
}

func (r *Resolver) resolveName(name string) (models.Player, error) {
	candidates := r.dir.Lookup(name)

	switch len(candidates) {
	case 0:
		r.warnUnresolved(name)
		return models.Player{DisplayName: name, Position: models.PositionUnknown}, nil
	case 1:
		return candidates[0], nil
	}

	positions := distinctPositions(candidates)
	if len(positions) == 1 {
		return candidates[0], nil
	}

	want, ok := r.rules[name]
	if !ok {
		return models.Player{}, &AmbiguousPlayerError{Name: name, Positions: positions}
	}
	for _, c := range candidates {
		if c.Position == want {
			return c, nil
		}
	}
	return models.Player{}, &AmbiguousPlayerError{Name: name, Positions: positions}
}

func (r *Resolver) warnUnresolved(name string) {
	if suggestion, ok := BestMatch(name, r.dir.Names(), suggestionThreshold); ok {
		r.logger.Warn("Unresolved player name", "name", name, "suggestion", suggestion)
		return
	}
	r.logger.Warn("Unresolved player name", "name", name)
}

func distinctPositions(players []models.Player) []models.Position {
	seen := make(map[models.Position]bool)
	var positions []models.Position
	for _, p := range players {
		if !seen[p.Position] {
			seen[p.Position] = true
			positions = append(positions, p.Position)
		}
	}
	sort.Slice(positions, func(i, j int) bool {
		return positions[i] < positions[j]
	})
	return positions
}
