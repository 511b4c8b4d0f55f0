package sleeper

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/omarshaarawi/playoffpool/internal/models"
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

// GetPlayerDirectory downloads the full NFL player dump and keeps only
// players who can score in a pool: active, on a roster, and at a fantasy
// position. Team defenses come back without a display name so the resolver
// indexes them by team.
func (a *API) GetPlayerDirectory(ctx context.Context) (map[string]models.DirectoryEntry, error) {
	var resp models.SleeperPlayersResponse
	if err := a.client.Get(ctx, "/players/nfl", &resp); err != nil {
		return nil, fmt.Errorf("fetching player directory: %w", err)
	}

	directory := make(map[string]models.DirectoryEntry, len(resp))
	skipped := 0
	for id, p := range resp {
		if p.PlayerID != "" {
			id = p.PlayerID
		}
		entry, ok := toDirectoryEntry(id, p)
		if !ok {
			skipped++
			continue
		}
		directory[id] = entry
	}
	slog.Debug("Player directory filtered", "kept", len(directory), "skipped", skipped)
	return directory, nil
}

func toDirectoryEntry(id string, p models.SleeperPlayer) (models.DirectoryEntry, bool) {
	team := ""
	if p.Team != nil {
		team = *p.Team
	}

	position := models.ParsePosition(p.Position)
	switch position {
	case models.PositionDEF:
		if team == "" {
			team = id
		}
		return models.DirectoryEntry{TeamAbbrev: team}, true
	case models.PositionUnknown:
		return models.DirectoryEntry{}, false
	}
	if !p.Active || team == "" {
		return models.DirectoryEntry{}, false
	}

	name := p.FullName
	if name == "" {
		name = strings.TrimSpace(p.FirstName + " " + p.LastName)
	}

	return models.DirectoryEntry{
		DisplayName: name,
		Position:    position,
		TeamAbbrev:  team,
	}, true
}

// GetRoundPoints fetches postseason stats for one week and keeps the
// configured scoring field. Players without that field are stored as nil.
func (a *API) GetRoundPoints(ctx context.Context, week int) (models.RoundPointTable, error) {
	var resp models.SleeperStatsResponse
	endpoint := fmt.Sprintf("/stats/nfl/post/%s/%d", a.client.Config.Season, week)
	if err := a.client.Get(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("fetching stats for week %d: %w", week, err)
	}

	table := make(models.RoundPointTable, len(resp))
	for id, line := range resp {
		table[id] = line[a.client.Config.ScoringKey]
	}
	return table, nil
}

func (a *API) GetState(ctx context.Context) (models.SleeperState, error) {
	var state models.SleeperState
	if err := a.client.Get(ctx, "/state/nfl", &state); err != nil {
		return models.SleeperState{}, fmt.Errorf("fetching league state: %w", err)
	}
	return state, nil
}
