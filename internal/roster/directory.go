package roster

import (
	"sort"

	"github.com/omarshaarawi/playoffpool/internal/models"
)

// Directory is an immutable name index over the player directory. Build it
// once per data snapshot and share it by pointer.
type Directory struct {
	byName map[string][]models.Player
	names  []string
	size   int
}

// NewDirectory indexes entries by display name. Team defense units carry no
// display name and are indexed under their team abbreviation as DEF.
func NewDirectory(entries map[string]models.DirectoryEntry) *Directory {
	byName := make(map[string][]models.Player)

	for id, e := range entries {
		p := models.Player{
			ID:          id,
			DisplayName: e.DisplayName,
			Position:    e.Position,
			TeamAbbrev:  e.TeamAbbrev,
		}
		if p.DisplayName == "" {
			if e.TeamAbbrev == "" {
				continue
			}
			p.DisplayName = e.TeamAbbrev
			p.Position = models.PositionDEF
		}
		if p.Position == "" {
			p.Position = models.PositionUnknown
		}
		byName[p.DisplayName] = append(byName[p.DisplayName], p)
	}

	names := make([]string, 0, len(byName))
	size := 0
	for name, players := range byName {
		sort.Slice(players, func(i, j int) bool {
			return players[i].ID < players[j].ID
		})
		names = append(names, name)
		size += len(players)
	}
	sort.Strings(names)

	return &Directory{byName: byName, names: names, size: size}
}

// Lookup returns every entry whose display name equals name, ordered by id.
func (d *Directory) Lookup(name string) []models.Player {
	players := d.byName[name]
	return append([]models.Player(nil), players...)
}

// Names returns the distinct display names in sorted order.
func (d *Directory) Names() []string {
	return append([]string(nil), d.names...)
}

func (d *Directory) Len() int {
	return d.size
}
