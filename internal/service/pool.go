package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/omarshaarawi/playoffpool/internal/chart"
	"github.com/omarshaarawi/playoffpool/internal/metrics"
	"github.com/omarshaarawi/playoffpool/internal/models"
	"github.com/omarshaarawi/playoffpool/internal/repository/memory"
	"github.com/omarshaarawi/playoffpool/internal/roster"
	"github.com/omarshaarawi/playoffpool/internal/scoring"
)

const (
	directoryTTL       = 24 * time.Hour
	teamMatchThreshold = 0.6
	nameMatchThreshold = 0.7
)

// ErrNotReady is returned by readers before the first successful refresh.
var ErrNotReady = errors.New("standings are not available yet")

type StatsSource interface {
	GetPlayerDirectory(ctx context.Context) (map[string]models.DirectoryEntry, error)
	GetRoundTables(ctx context.Context, rounds models.RoundConfig) (scoring.Tables, error)
}

type RosterSource interface {
	LoadRosters() (models.RosterTable, error)
	LoadAliases() (models.AliasTable, error)
}

type PoolService struct {
	// refreshMu serializes refreshes so an older build never overwrites a
	// newer board.
	refreshMu sync.Mutex

	stats   StatsSource
	rosters RosterSource
	engine  *scoring.Engine
	rules   roster.DisambiguationRules
	repo    *memory.Repository
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

func NewPoolService(stats StatsSource, rosters RosterSource, engine *scoring.Engine, rules roster.DisambiguationRules, repo *memory.Repository, m *metrics.Metrics, logger *slog.Logger) *PoolService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PoolService{
		stats:   stats,
		rosters: rosters,
		engine:  engine,
		rules:   rules,
		repo:    repo,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

// Refresh rebuilds the board from fresh rosters and stats. On failure the
// previously published board stays in place. Concurrent calls run one at a
// time.
func (s *PoolService) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	started := s.now()
	board, unresolved, err := s.buildBoard(ctx)
	if s.metrics != nil {
		s.metrics.ObserveRefresh(started, err)
	}
	if err != nil {
		s.logger.Error("Failed to refresh board", "error", err)
		return err
	}

	board.ComputedAt = s.now()
	s.repo.SaveBoard(board)
	if s.metrics != nil {
		s.metrics.SetBoardSize(len(board.Standings), unresolved)
	}

	s.logger.Info("Board refreshed",
		"teams", len(board.Standings),
		"unresolved", unresolved,
		"duration", time.Since(started))
	return nil
}

func (s *PoolService) buildBoard(ctx context.Context) (*models.Board, int, error) {
	dir, err := s.getDirectory(ctx)
	if err != nil {
		return nil, 0, err
	}

	table, err := s.rosters.LoadRosters()
	if err != nil {
		return nil, 0, fmt.Errorf("error loading rosters: %w", err)
	}
	aliases, err := s.rosters.LoadAliases()
	if err != nil {
		return nil, 0, fmt.Errorf("error loading aliases: %w", err)
	}

	resolver := roster.NewResolver(dir, aliases, s.rules, s.logger)
	entries, err := resolver.ResolveAll(table)
	if err != nil {
		return nil, 0, err
	}

	unresolved := 0
	for _, e := range entries {
		for _, p := range e.Players {
			if !p.Resolved() {
				unresolved++
			}
		}
	}

	tables, err := s.stats.GetRoundTables(ctx, s.engine.Rounds())
	if err != nil {
		return nil, 0, fmt.Errorf("error fetching round points: %w", err)
	}

	board, err := s.engine.Compute(entries, tables)
	if err != nil {
		return nil, 0, err
	}
	return board, unresolved, nil
}

func (s *PoolService) getDirectory(ctx context.Context) (*roster.Directory, error) {
	dir, fetchedAt := s.repo.GetDirectory()
	if dir != nil && s.now().Sub(fetchedAt) < directoryTTL {
		return dir, nil
	}

	entries, err := s.stats.GetPlayerDirectory(ctx)
	if err != nil {
		if dir != nil {
			s.logger.Warn("Using stale player directory", "error", err, "fetched_at", fetchedAt)
			return dir, nil
		}
		return nil, fmt.Errorf("error fetching player directory: %w", err)
	}

	dir = roster.NewDirectory(entries)
	s.repo.SaveDirectory(dir, s.now())
	s.logger.Info("Player directory loaded", "players", dir.Len())
	return dir, nil
}

// Board returns the last published board.
func (s *PoolService) Board() (*models.Board, error) {
	board := s.repo.GetBoard()
	if board == nil {
		return nil, ErrNotReady
	}
	return board, nil
}

func (s *PoolService) FindTeam(name string) (models.TeamRoster, error) {
	board, err := s.Board()
	if err != nil {
		return models.TeamRoster{}, err
	}

	names := make([]string, len(board.Rosters))
	for i, r := range board.Rosters {
		names[i] = r.Team
	}
	match, ok := roster.BestMatch(name, names, teamMatchThreshold)
	if !ok {
		return models.TeamRoster{}, fmt.Errorf("team not found: %s", name)
	}
	for _, r := range board.Rosters {
		if r.Team == match {
			return r, nil
		}
	}
	return models.TeamRoster{}, fmt.Errorf("team not found: %s", name)
}

// FindSelection looks a player up among the rostered picks.
func (s *PoolService) FindSelection(playerName string) (models.SelectionCount, bool, error) {
	board, err := s.Board()
	if err != nil {
		return models.SelectionCount{}, false, err
	}

	names := make([]string, len(board.Selections))
	for i, sc := range board.Selections {
		names[i] = sc.Player.DisplayName
	}
	match, ok := roster.BestMatch(playerName, names, nameMatchThreshold)
	if !ok {
		return models.SelectionCount{}, false, nil
	}
	for _, sc := range board.Selections {
		if sc.Player.DisplayName == match {
			return sc, true, nil
		}
	}
	return models.SelectionCount{}, false, nil
}

func (s *PoolService) GetStandingsChart() ([]byte, error) {
	board, err := s.Board()
	if err != nil {
		return nil, err
	}
	return chart.StandingsPNG(board.Standings)
}
