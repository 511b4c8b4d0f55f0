package ingest

import "github.com/omarshaarawi/playoffpool/internal/models"

// FileSource rereads the roster and alias sheets on every call so edits
// made between refreshes are picked up.
type FileSource struct {
	RosterFile string
	AliasFile  string
}

func (s FileSource) LoadRosters() (models.RosterTable, error) {
	return LoadRosterTable(s.RosterFile)
}

// LoadAliases returns an empty table when no alias file is configured.
func (s FileSource) LoadAliases() (models.AliasTable, error) {
	if s.AliasFile == "" {
		return models.AliasTable{}, nil
	}
	return LoadAliasTable(s.AliasFile)
}
