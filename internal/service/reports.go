package service

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/omarshaarawi/playoffpool/internal/models"
	"github.com/omarshaarawi/playoffpool/internal/scoring"
)

func (s *PoolService) GetStandings() (string, error) {
	board, err := s.Board()
	if err != nil {
		return "", fmt.Errorf("error fetching standings: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("🏆 *Playoff Standings*\n\n")
	for _, team := range board.Standings {
		sb.WriteString(fmt.Sprintf("%s *%s* - %.2f pts\n", team.RankLabel, escape(team.Team), team.Total))
		sb.WriteString(fmt.Sprintf("   %s\n", formatRounds(board.Rounds, team.PerRound)))
		if team.PointsBehind > 0 {
			sb.WriteString(fmt.Sprintf("   %.2f behind\n", team.PointsBehind))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("_Updated %s_", board.ComputedAt.Format("Jan 2 3:04 PM")))

	return sb.String(), nil
}

func formatRounds(rounds models.RoundConfig, perRound map[string]float64) string {
	parts := make([]string, len(rounds))
	for i, r := range rounds {
		parts[i] = fmt.Sprintf("%s: %.2f", r.Name, perRound[r.Name])
	}
	return strings.Join(parts, " | ")
}

func (s *PoolService) GetLeaderboard(limit int) (string, error) {
	board, err := s.Board()
	if err != nil {
		return "", fmt.Errorf("error fetching leaderboard: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("⭐ *Top Players*\n\n")

	if len(board.Leaderboard) == 0 {
		sb.WriteString("No players picked yet.")
		return sb.String(), nil
	}

	for i, row := range board.Leaderboard {
		if limit > 0 && i >= limit {
			break
		}
		sb.WriteString(fmt.Sprintf("%s %s %s - %.2f pts (%s)\n",
			scoring.Ordinal(row.Rank), row.Player.Position, escape(row.Player.DisplayName), row.Total, escape(row.Team)))
	}
	return sb.String(), nil
}

func (s *PoolService) GetTeamRoster(teamName string) (string, error) {
	team, err := s.FindTeam(teamName)
	if err != nil {
		return "", fmt.Errorf("error fetching team roster: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 *%s's Roster* (%.2f pts)\n", escape(team.Team), team.Total))

	for _, group := range team.Groups {
		sb.WriteString(fmt.Sprintf("\n*%s:*\n", group.Position))
		for _, row := range group.Players {
			name := escape(row.Player.DisplayName)
			if !row.Player.Resolved() {
				name += " (?)"
			}
			sb.WriteString(fmt.Sprintf("▫️ %s - %.2f pts\n", name, row.Total))
		}
	}

	return sb.String(), nil
}

func (s *PoolService) WhoHas(playerName string) (string, error) {
	sc, found, err := s.FindSelection(playerName)
	if err != nil {
		return "", fmt.Errorf("error checking who has player: %w", err)
	}
	if !found {
		return fmt.Sprintf("🔍 Nobody picked a player matching '%s'.", escape(playerName)), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s* (%s", escape(sc.Player.DisplayName), sc.Player.Position))
	if sc.Player.TeamAbbrev != "" {
		sb.WriteString(fmt.Sprintf(" - %s", sc.Player.TeamAbbrev))
	}
	sb.WriteString(")\n")
	sb.WriteString("━━━━━━━━━━━━━━━━\n")
	sb.WriteString(fmt.Sprintf("Picked by %d %s:\n", sc.Count, plural(sc.Count, "team", "teams")))
	for _, team := range sc.Teams {
		sb.WriteString(fmt.Sprintf("  • %s\n", escape(team)))
	}

	if total, ok := s.playerTotal(sc.Player); ok {
		sb.WriteString(fmt.Sprintf("\n%.2f pts", total))
	}

	return sb.String(), nil
}

func (s *PoolService) playerTotal(p models.Player) (float64, bool) {
	board := s.repo.GetBoard()
	if board == nil {
		return 0, false
	}
	for _, row := range board.Leaderboard {
		if row.Player.Key() == p.Key() {
			return row.Total, true
		}
	}
	return 0, false
}

func (s *PoolService) GetMostPicked(limit int) (string, error) {
	board, err := s.Board()
	if err != nil {
		return "", fmt.Errorf("error fetching selections: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("🔥 *Most Picked*\n\n")
	for i, sc := range board.Selections {
		if limit > 0 && i >= limit {
			break
		}
		sb.WriteString(fmt.Sprintf("%s %s - %d %s\n",
			sc.Player.Position, escape(sc.Player.DisplayName), sc.Count, plural(sc.Count, "team", "teams")))
	}
	return sb.String(), nil
}

func (s *PoolService) GetUniquePicks() (string, error) {
	board, err := s.Board()
	if err != nil {
		return "", fmt.Errorf("error fetching selections: %w", err)
	}

	unique := scoring.UniqueSelections(board.Selections)

	var sb strings.Builder
	sb.WriteString("💎 *Unique Picks*\n\n")
	if len(unique) == 0 {
		sb.WriteString("Every player was picked by more than one team.")
		return sb.String(), nil
	}
	for _, sc := range unique {
		sb.WriteString(fmt.Sprintf("%s %s - %s\n", sc.Player.Position, escape(sc.Player.DisplayName), escape(sc.Teams[0])))
	}
	return sb.String(), nil
}

// escape keeps user-entered names from being read as Telegram Markdown.
func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
