package models

import "time"

type Position string

const (
	PositionQB      Position = "QB"
	PositionRB      Position = "RB"
	PositionWR      Position = "WR"
	PositionTE      Position = "TE"
	PositionFLEX    Position = "FLEX"
	PositionK       Position = "K"
	PositionDEF     Position = "DEF"
	PositionUnknown Position = "Unknown"
)

// ParsePosition maps a stats-provider position string onto a Position.
func ParsePosition(s string) Position {
	switch s {
	case "QB":
		return PositionQB
	case "RB":
		return PositionRB
	case "WR":
		return PositionWR
	case "TE":
		return PositionTE
	case "FLEX":
		return PositionFLEX
	case "K":
		return PositionK
	case "DEF", "D/ST", "DST":
		return PositionDEF
	default:
		return PositionUnknown
	}
}

type Player struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Position    Position `json:"position"`
	TeamAbbrev  string   `json:"team_abbrev,omitempty"`
}

// Resolved reports whether the player was matched against the directory.
func (p Player) Resolved() bool {
	return p.ID != ""
}

// Key identifies a player across rosters. Unresolved players fall back to
// their display name.
func (p Player) Key() string {
	if p.ID != "" {
		return p.ID
	}
	return p.DisplayName
}

type DirectoryEntry struct {
	DisplayName string
	Position    Position
	TeamAbbrev  string
}

// RoundPointTable holds raw stat points for one round. A nil value or a
// missing key means zero points.
type RoundPointTable map[string]*float64

// Points returns the raw points for key, treating absent and nil as 0.
func (t RoundPointTable) Points(key string) float64 {
	v, ok := t[key]
	if !ok || v == nil {
		return 0
	}
	return *v
}

type Round struct {
	Name       string  `yaml:"name" json:"name"`
	Week       int     `yaml:"week" json:"week"`
	Multiplier float64 `yaml:"multiplier" json:"multiplier"`
}

type RoundConfig []Round

// Names returns the round names in configured order.
func (rc RoundConfig) Names() []string {
	names := make([]string, len(rc))
	for i, r := range rc {
		names[i] = r.Name
	}
	return names
}

// RosterTable maps a team name to the raw names entered in its column.
type RosterTable map[string][]string

// AliasTable maps a spreadsheet label to a canonical display name.
type AliasTable map[string]string

type RosterEntry struct {
	Team    string   `json:"team"`
	Players []Player `json:"players"`
}

type PlayerScoreRow struct {
	Player   Player             `json:"player"`
	Team     string             `json:"team,omitempty"`
	PerRound map[string]float64 `json:"per_round"`
	Total    float64            `json:"total"`
	Rank     int                `json:"rank,omitempty"`
}

type TeamSummary struct {
	Team         string             `json:"team"`
	PerRound     map[string]float64 `json:"per_round"`
	Total        float64            `json:"total"`
	Rank         int                `json:"rank"`
	RankLabel    string             `json:"rank_label"`
	PointsBehind float64            `json:"points_behind"`
}

type PositionGroup struct {
	Position Position         `json:"position"`
	Players  []PlayerScoreRow `json:"players"`
}

type TeamRoster struct {
	Team   string          `json:"team"`
	Total  float64         `json:"total"`
	Groups []PositionGroup `json:"groups"`
}

type SelectionCount struct {
	Player Player   `json:"player"`
	Count  int      `json:"count"`
	Teams  []string `json:"teams"`
}

// Board is one fully computed snapshot of the pool.
type Board struct {
	Rounds      RoundConfig      `json:"rounds"`
	Standings   []TeamSummary    `json:"standings"`
	Leaderboard []PlayerScoreRow `json:"leaderboard"`
	Rosters     []TeamRoster     `json:"rosters"`
	Selections  []SelectionCount `json:"selections"`
	ComputedAt  time.Time        `json:"computed_at"`
}
