package scoring

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/omarshaarawi/playoffpool/internal/models"
)

// RankTeams orders teams by total (highest first, then by name) and assigns
// standard competition ranks: tied totals share a rank and the next
// distinct total skips ahead, e.g. 1st, 2nd, 2nd, 4th.
func RankTeams(summaries []models.TeamSummary) []models.TeamSummary {
	ranked := make([]models.TeamSummary, len(summaries))
	copy(ranked, summaries)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Total != ranked[j].Total {
			return ranked[i].Total > ranked[j].Total
		}
		return ranked[i].Team < ranked[j].Team
	})

	behind := PointsBehindLeader(ranked)
	for i := range ranked {
		if i > 0 && ranked[i].Total == ranked[i-1].Total {
			ranked[i].Rank = ranked[i-1].Rank
		} else {
			ranked[i].Rank = i + 1
		}
		ranked[i].RankLabel = Ordinal(ranked[i].Rank)
		ranked[i].PointsBehind = behind[ranked[i].Team]
	}

	return ranked
}

// PointsBehindLeader returns, per team, how far its total trails the best
// total. The leader maps to 0.
func PointsBehindLeader(summaries []models.TeamSummary) map[string]float64 {
	behind := make(map[string]float64, len(summaries))
	if len(summaries) == 0 {
		return behind
	}

	leader := summaries[0].Total
	for _, s := range summaries[1:] {
		if s.Total > leader {
			leader = s.Total
		}
	}
	for _, s := range summaries {
		behind[s.Team] = leader - s.Total
	}
	return behind
}

// Ordinal renders n with its English suffix. 11th-13th (and 111th etc.)
// always take "th".
func Ordinal(n int) string {
	suffix := "th"
	switch mod100 := n % 100; {
	case mod100 >= 10 && mod100 <= 20:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// Leaderboard collapses roster rows to one row per distinct player, orders
// them by total then name, and assigns competition ranks. Team lists every
// team that picked the player.
func Leaderboard(rows []models.PlayerScoreRow) []models.PlayerScoreRow {
	index := make(map[string]int)
	teams := make(map[string][]string)
	var board []models.PlayerScoreRow

	for _, row := range rows {
		key := row.Player.Key()
		if _, ok := index[key]; !ok {
			index[key] = len(board)
			board = append(board, row)
		}
		if row.Team != "" && !slices.Contains(teams[key], row.Team) {
			teams[key] = append(teams[key], row.Team)
		}
	}
	for i := range board {
		t := teams[board[i].Player.Key()]
		sort.Strings(t)
		board[i].Team = strings.Join(t, ", ")
	}

	sort.SliceStable(board, func(i, j int) bool {
		if board[i].Total != board[j].Total {
			return board[i].Total > board[j].Total
		}
		if board[i].Player.DisplayName != board[j].Player.DisplayName {
			return board[i].Player.DisplayName < board[j].Player.DisplayName
		}
		return board[i].Player.Key() < board[j].Player.Key()
	})

	for i := range board {
		if i > 0 && board[i].Total == board[i-1].Total {
			board[i].Rank = board[i-1].Rank
		} else {
			board[i].Rank = i + 1
		}
	}
	return board
}
