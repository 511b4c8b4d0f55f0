package scoring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/playoffpool/internal/models"
)

func pts(v float64) *float64 { return &v }

var testRounds = models.RoundConfig{
	{Name: "Wildcard", Week: 1, Multiplier: 1},
	{Name: "Divisional", Week: 2, Multiplier: 1.5},
	{Name: "Conference", Week: 3, Multiplier: 2},
	{Name: "Super Bowl", Week: 5, Multiplier: 2.5},
}

var (
	mahomes = models.Player{ID: "4046", DisplayName: "Patrick Mahomes", Position: models.PositionQB, TeamAbbrev: "KC"}
	kelce   = models.Player{ID: "1466", DisplayName: "Travis Kelce", Position: models.PositionTE, TeamAbbrev: "KC"}
	allen   = models.Player{ID: "4984", DisplayName: "Josh Allen", Position: models.PositionQB, TeamAbbrev: "BUF"}
	sfDef   = models.Player{ID: "SF", DisplayName: "SF", Position: models.PositionDEF, TeamAbbrev: "SF"}
	nobody  = models.Player{DisplayName: "Nobody Special", Position: models.PositionUnknown}
)

func testTables() Tables {
	return Tables{
		"Wildcard": {
			"4046": pts(20),
			"1466": pts(12.5),
			"4984": pts(30),
			"SF":   nil,
		},
		"Divisional": {
			"4046": pts(24),
			"1466": pts(8),
			"SF":   pts(10),
		},
		"Conference": {
			"4046": pts(18),
		},
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(testRounds)
	require.NoError(t, err)
	return e
}

func TestNewEngine(t *testing.T) {
	tests := []struct {
		name    string
		rounds  models.RoundConfig
		wantErr bool
	}{
		{name: "valid rounds", rounds: testRounds},
		{name: "no rounds", rounds: nil, wantErr: true},
		{name: "zero multiplier", rounds: models.RoundConfig{{Name: "Wildcard", Multiplier: 0}}, wantErr: true},
		{name: "negative multiplier", rounds: models.RoundConfig{{Name: "Wildcard", Multiplier: -1}}, wantErr: true},
		{name: "duplicate round", rounds: models.RoundConfig{{Name: "Wildcard", Multiplier: 1}, {Name: "Wildcard", Multiplier: 2}}, wantErr: true},
		{name: "empty name", rounds: models.RoundConfig{{Name: "", Multiplier: 1}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEngine(tt.rounds)
			if tt.wantErr {
				var cfgErr *ConfigurationError
				require.ErrorAs(t, err, &cfgErr)
				assert.Nil(t, e)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rounds.Names(), e.Rounds().Names())
		})
	}
}

func TestEngine_PlayerRoundScore(t *testing.T) {
	e := newTestEngine(t)
	tables := testTables()

	tests := []struct {
		name   string
		player models.Player
		round  string
		want   float64
	}{
		{name: "weighted points", player: mahomes, round: "Divisional", want: 36},
		{name: "unit multiplier", player: kelce, round: "Wildcard", want: 12.5},
		{name: "null value is zero", player: sfDef, round: "Wildcard", want: 0},
		{name: "absent player is zero", player: allen, round: "Divisional", want: 0},
		{name: "round without table is zero", player: mahomes, round: "Super Bowl", want: 0},
		{name: "unresolved player is zero", player: nobody, round: "Wildcard", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.PlayerRoundScore(tt.player, tt.round, tables[tt.round])
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEngine_PlayerRoundScore_FallsBackToDisplayName(t *testing.T) {
	e := newTestEngine(t)
	table := models.RoundPointTable{"Patrick Mahomes": pts(10)}

	got, err := e.PlayerRoundScore(mahomes, "Conference", table)
	require.NoError(t, err)
	assert.Equal(t, 20.0, got)
}

func TestEngine_PlayerRoundScore_UnknownRound(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.PlayerRoundScore(mahomes, "Pro Bowl", models.RoundPointTable{})
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "Pro Bowl", cfgErr.Field)
}

func TestEngine_PlayerRow(t *testing.T) {
	e := newTestEngine(t)

	row, err := e.PlayerRow(mahomes, "Team A", testTables())
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{
		"Wildcard":   20,
		"Divisional": 36,
		"Conference": 36,
		"Super Bowl": 0,
	}, row.PerRound)
	assert.Equal(t, 92.0, row.Total)
	assert.Equal(t, "Team A", row.Team)

	total, err := e.PlayerTotal(mahomes, testTables())
	require.NoError(t, err)
	assert.Equal(t, row.Total, total)
}

func TestEngine_TeamSummary(t *testing.T) {
	e := newTestEngine(t)
	entry := models.RosterEntry{Team: "Team A", Players: []models.Player{mahomes, kelce, sfDef, nobody}}

	summary, rows, err := e.TeamSummary(entry, testTables())
	require.NoError(t, err)
	require.Len(t, rows, 4)

	var playerSum float64
	for _, row := range rows {
		var roundSum float64
		for _, v := range row.PerRound {
			roundSum += v
		}
		assert.InDelta(t, roundSum, row.Total, 1e-9, "player %s", row.Player.DisplayName)
		playerSum += row.Total
	}
	assert.InDelta(t, playerSum, summary.Total, 1e-9)

	var teamRoundSum float64
	for _, v := range summary.PerRound {
		teamRoundSum += v
	}
	assert.InDelta(t, summary.Total, teamRoundSum, 1e-9)

	// 92 (Mahomes) + 24.5 (Kelce) + 15 (SF) + 0 (unresolved)
	assert.InDelta(t, 131.5, summary.Total, 1e-9)
	assert.InDelta(t, 32.5, summary.PerRound["Wildcard"], 1e-9)
	assert.Equal(t, 0.0, summary.PerRound["Super Bowl"])
}

func TestEngine_Compute(t *testing.T) {
	e := newTestEngine(t)
	entries := []models.RosterEntry{
		{Team: "Team A", Players: []models.Player{mahomes, kelce}},
		{Team: "Team B", Players: []models.Player{allen, kelce, sfDef}},
		{Team: "Team C", Players: []models.Player{nobody}},
	}

	board, err := e.Compute(entries, testTables())
	require.NoError(t, err)

	require.Len(t, board.Standings, 3)
	assert.Equal(t, "Team A", board.Standings[0].Team)
	assert.Equal(t, "1st", board.Standings[0].RankLabel)
	assert.Equal(t, 0.0, board.Standings[0].PointsBehind)
	assert.Equal(t, "Team B", board.Standings[1].Team)
	assert.InDelta(t, 116.5-69.5, board.Standings[1].PointsBehind, 1e-9)
	assert.Equal(t, "Team C", board.Standings[2].Team)
	assert.Equal(t, 0.0, board.Standings[2].Total)

	assert.Len(t, board.Leaderboard, 5)
	assert.Equal(t, mahomes, board.Leaderboard[0].Player)
	assert.Equal(t, 1, board.Leaderboard[0].Rank)
	assert.Equal(t, kelce, board.Leaderboard[2].Player)
	assert.Equal(t, "Team A, Team B", board.Leaderboard[2].Team)

	require.Len(t, board.Rosters, 3)
	assert.Equal(t, "Team B", board.Rosters[1].Team)
	assert.Equal(t, models.PositionQB, board.Rosters[1].Groups[0].Position)

	require.NotEmpty(t, board.Selections)
	assert.Equal(t, kelce, board.Selections[0].Player)
	assert.Equal(t, 2, board.Selections[0].Count)
	assert.True(t, board.ComputedAt.IsZero())
}

func TestEngine_Compute_Idempotent(t *testing.T) {
	e := newTestEngine(t)
	entries := []models.RosterEntry{
		{Team: "Team B", Players: []models.Player{allen, kelce, sfDef}},
		{Team: "Team A", Players: []models.Player{mahomes, kelce}},
	}
	tables := testTables()

	first, err := e.Compute(entries, tables)
	require.NoError(t, err)
	second, err := e.Compute(entries, tables)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "Team B", entries[0].Team, "input order must not change")
}

func TestEngine_Compute_Errors(t *testing.T) {
	e := newTestEngine(t)
	players := []models.Player{mahomes}

	tests := []struct {
		name    string
		entries []models.RosterEntry
		tables  Tables
	}{
		{name: "no teams", entries: nil, tables: testTables()},
		{name: "duplicate team", entries: []models.RosterEntry{{Team: "A", Players: players}, {Team: "A", Players: players}}, tables: testTables()},
		{name: "empty team name", entries: []models.RosterEntry{{Team: "", Players: players}}, tables: testTables()},
		{name: "unconfigured round table", entries: []models.RosterEntry{{Team: "A", Players: players}}, tables: Tables{"Pro Bowl": {}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := e.Compute(tt.entries, tt.tables)
			assert.Nil(t, board)
			var cfgErr *ConfigurationError
			assert.True(t, errors.As(err, &cfgErr), "got %v", err)
		})
	}
}
