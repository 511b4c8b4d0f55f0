package scoring

import (
	"fmt"
	"sort"

	"github.com/omarshaarawi/playoffpool/internal/models"
)

// Tables maps a round name to the raw point table fetched for that round.
type Tables map[string]models.RoundPointTable

type Engine struct {
	rounds      models.RoundConfig
	multipliers map[string]float64
}

// NewEngine validates the round setup. Every later call can assume the
// rounds are non-empty, uniquely named and positively weighted.
func NewEngine(rounds models.RoundConfig) (*Engine, error) {
	if len(rounds) == 0 {
		return nil, &ConfigurationError{Field: "rounds", Reason: "no rounds configured"}
	}

	multipliers := make(map[string]float64, len(rounds))
	for i, r := range rounds {
		if r.Name == "" {
			return nil, &ConfigurationError{Field: fmt.Sprintf("rounds[%d].name", i), Reason: "empty round name"}
		}
		if _, dup := multipliers[r.Name]; dup {
			return nil, &ConfigurationError{Field: r.Name, Reason: "duplicate round"}
		}
		if !(r.Multiplier > 0) {
			return nil, &ConfigurationError{Field: r.Name, Reason: fmt.Sprintf("multiplier must be positive, got %v", r.Multiplier)}
		}
		multipliers[r.Name] = r.Multiplier
	}

	return &Engine{
		rounds:      append(models.RoundConfig(nil), rounds...),
		multipliers: multipliers,
	}, nil
}

func (e *Engine) Rounds() models.RoundConfig {
	return append(models.RoundConfig(nil), e.rounds...)
}

func (e *Engine) Multiplier(round string) (float64, error) {
	m, ok := e.multipliers[round]
	if !ok {
		return 0, &ConfigurationError{Field: round, Reason: "round has no configured multiplier"}
	}
	return m, nil
}

// ValidateTables rejects point tables for rounds that are not configured.
// Configured rounds without a table score zero.
func (e *Engine) ValidateTables(tables Tables) error {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := e.Multiplier(name); err != nil {
			return err
		}
	}
	return nil
}

// PlayerRoundScore is the player's raw points for the round times the
// round multiplier.
func (e *Engine) PlayerRoundScore(player models.Player, round string, table models.RoundPointTable) (float64, error) {
	m, err := e.Multiplier(round)
	if err != nil {
		return 0, err
	}
	return rawPoints(player, table) * m, nil
}

func rawPoints(player models.Player, table models.RoundPointTable) float64 {
	if !player.Resolved() {
		return 0
	}
	if v, ok := table[player.ID]; ok {
		if v == nil {
			return 0
		}
		return *v
	}
	return table.Points(player.DisplayName)
}

// PlayerRow scores one player across every configured round, in round order.
func (e *Engine) PlayerRow(player models.Player, team string, tables Tables) (models.PlayerScoreRow, error) {
	row := models.PlayerScoreRow{
		Player:   player,
		Team:     team,
		PerRound: make(map[string]float64, len(e.rounds)),
	}
	for _, r := range e.rounds {
		score, err := e.PlayerRoundScore(player, r.Name, tables[r.Name])
		if err != nil {
			return models.PlayerScoreRow{}, err
		}
		row.PerRound[r.Name] = score
		row.Total += score
	}
	return row, nil
}

// PlayerTotal is the sum of the player's per-round scores.
func (e *Engine) PlayerTotal(player models.Player, tables Tables) (float64, error) {
	row, err := e.PlayerRow(player, "", tables)
	if err != nil {
		return 0, err
	}
	return row.Total, nil
}

// TeamSummary sums the team's player rows. The returned rows are in roster
// order. Rank fields are left for RankTeams.
func (e *Engine) TeamSummary(entry models.RosterEntry, tables Tables) (models.TeamSummary, []models.PlayerScoreRow, error) {
	summary := models.TeamSummary{
		Team:     entry.Team,
		PerRound: make(map[string]float64, len(e.rounds)),
	}
	for _, r := range e.rounds {
		summary.PerRound[r.Name] = 0
	}

	rows := make([]models.PlayerScoreRow, 0, len(entry.Players))
	for _, p := range entry.Players {
		row, err := e.PlayerRow(p, entry.Team, tables)
		if err != nil {
			return models.TeamSummary{}, nil, err
		}
		for _, r := range e.rounds {
			summary.PerRound[r.Name] += row.PerRound[r.Name]
		}
		summary.Total += row.Total
		rows = append(rows, row)
	}
	return summary, rows, nil
}

// Compute runs the full pipeline over resolved rosters. ComputedAt is left
// zero so identical inputs produce identical boards.
func (e *Engine) Compute(entries []models.RosterEntry, tables Tables) (*models.Board, error) {
	if len(entries) == 0 {
		return nil, &ConfigurationError{Field: "rosters", Reason: "no teams to score"}
	}
	if err := e.ValidateTables(tables); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if entry.Team == "" {
			return nil, &ConfigurationError{Field: "rosters", Reason: "team with empty name"}
		}
		if seen[entry.Team] {
			return nil, &ConfigurationError{Field: entry.Team, Reason: "duplicate team"}
		}
		seen[entry.Team] = true
	}

	summaries := make([]models.TeamSummary, 0, len(entries))
	var allRows []models.PlayerScoreRow
	rosters := make([]models.TeamRoster, 0, len(entries))

	for _, entry := range entries {
		summary, rows, err := e.TeamSummary(entry, tables)
		if err != nil {
			return nil, fmt.Errorf("scoring team %s: %w", entry.Team, err)
		}
		summaries = append(summaries, summary)
		allRows = append(allRows, rows...)
		rosters = append(rosters, RosterListing(entry.Team, rows))
	}

	sort.Slice(rosters, func(i, j int) bool {
		return rosters[i].Team < rosters[j].Team
	})

	return &models.Board{
		Rounds:      e.Rounds(),
		Standings:   RankTeams(summaries),
		Leaderboard: Leaderboard(allRows),
		Rosters:     rosters,
		Selections:  SelectionFrequency(entries),
	}, nil
}
