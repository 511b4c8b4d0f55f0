package scoring

import (
	"sort"

	"github.com/omarshaarawi/playoffpool/internal/models"
)

// SelectionFrequency counts how many teams picked each distinct player.
// A team listing the same player twice counts once.
func SelectionFrequency(entries []models.RosterEntry) []models.SelectionCount {
	byKey := make(map[string]*models.SelectionCount)
	var order []string

	for _, entry := range entries {
		counted := make(map[string]bool)
		for _, p := range entry.Players {
			key := p.Key()
			if counted[key] {
				continue
			}
			counted[key] = true

			sc, ok := byKey[key]
			if !ok {
				sc = &models.SelectionCount{Player: p}
				byKey[key] = sc
				order = append(order, key)
			}
			sc.Count++
			sc.Teams = append(sc.Teams, entry.Team)
		}
	}

	counts := make([]models.SelectionCount, 0, len(order))
	for _, key := range order {
		sc := byKey[key]
		sort.Strings(sc.Teams)
		counts = append(counts, *sc)
	}

	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		if counts[i].Player.DisplayName != counts[j].Player.DisplayName {
			return counts[i].Player.DisplayName < counts[j].Player.DisplayName
		}
		return counts[i].Player.Key() < counts[j].Player.Key()
	})
	return counts
}

// UniqueSelections keeps players picked by exactly one team.
func UniqueSelections(counts []models.SelectionCount) []models.SelectionCount {
	var unique []models.SelectionCount
	for _, sc := range counts {
		if sc.Count == 1 {
			unique = append(unique, sc)
		}
	}
	return unique
}
