package scoring

import (
	"sort"

	"github.com/omarshaarawi/playoffpool/internal/models"
)

var positionOrder = map[models.Position]int{
	models.PositionQB:   0,
	models.PositionRB:   1,
	models.PositionWR:   2,
	models.PositionTE:   3,
	models.PositionFLEX: 4,
	models.PositionDEF:  5,
	models.PositionK:    6,
}

func positionRank(p models.Position) int {
	if rank, ok := positionOrder[p]; ok {
		return rank
	}
	return len(positionOrder)
}

// RosterListing sorts a team's rows by position precedence and name and
// groups them by position.
func RosterListing(team string, rows []models.PlayerScoreRow) models.TeamRoster {
	sorted := make([]models.PlayerScoreRow, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		pi, pj := positionRank(sorted[i].Player.Position), positionRank(sorted[j].Player.Position)
		if pi != pj {
			return pi < pj
		}
		return sorted[i].Player.DisplayName < sorted[j].Player.DisplayName
	})

	roster := models.TeamRoster{Team: team}
	for _, row := range sorted {
		roster.Total += row.Total
		n := len(roster.Groups)
		if n == 0 || roster.Groups[n-1].Position != row.Player.Position {
			roster.Groups = append(roster.Groups, models.PositionGroup{Position: row.Player.Position})
			n++
		}
		roster.Groups[n-1].Players = append(roster.Groups[n-1].Players, row)
	}
	return roster
}
