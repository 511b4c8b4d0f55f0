package models

// SleeperPlayer is one entry of the /players/nfl dump. Team defenses carry
// no names and use the team abbreviation as their id.
type SleeperPlayer struct {
	PlayerID  string  `json:"player_id"`
	FullName  string  `json:"full_name"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Position  string  `json:"position"`
	Team      *string `json:"team"`
	Active    bool    `json:"active"`
}

type SleeperPlayersResponse map[string]SleeperPlayer

// SleeperStatLine maps stat keys (pts_ppr, pts_half_ppr, ...) to values.
// Values are pointers because the API emits explicit nulls.
type SleeperStatLine map[string]*float64

type SleeperStatsResponse map[string]SleeperStatLine

type SleeperState struct {
	Week       int    `json:"week"`
	Season     string `json:"season"`
	SeasonType string `json:"season_type"`
}
