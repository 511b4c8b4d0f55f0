package fantasy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/omarshaarawi/playoffpool/internal/api/sleeper"
	"github.com/omarshaarawi/playoffpool/internal/models"
	"github.com/omarshaarawi/playoffpool/internal/scoring"
)

type API struct {
	sleeperAPI *sleeper.API
}

func NewAPI(sleeperAPI *sleeper.API) *API {
	return &API{sleeperAPI: sleeperAPI}
}

func (a *API) GetPlayerDirectory(ctx context.Context) (map[string]models.DirectoryEntry, error) {
	return a.sleeperAPI.GetPlayerDirectory(ctx)
}

// GetRoundTables fetches every configured round in order. Scoring starts
// only after all tables are in hand, so a failure here aborts the refresh.
func (a *API) GetRoundTables(ctx context.Context, rounds models.RoundConfig) (scoring.Tables, error) {
	tables := make(scoring.Tables, len(rounds))
	for _, r := range rounds {
		table, err := a.sleeperAPI.GetRoundPoints(ctx, r.Week)
		if err != nil {
			return nil, fmt.Errorf("round %s: %w", r.Name, err)
		}
		slog.Debug("Fetched round points", "round", r.Name, "week", r.Week, "players", len(table))
		tables[r.Name] = table
	}
	return tables, nil
}

func (a *API) GetState(ctx context.Context) (models.SleeperState, error) {
	return a.sleeperAPI.GetState(ctx)
}
