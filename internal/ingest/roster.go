package ingest

import (
	"fmt"
	"strings"

	"github.com/omarshaarawi/playoffpool/internal/models"
)

// LoadRosterTable reads a roster sheet laid out one team per column: the
// header row holds team names and the cells below hold the picks.
func LoadRosterTable(path string) (models.RosterTable, error) {
	rows, err := ReadGrid(path)
	if err != nil {
		return nil, err
	}
	return RosterTableFromRows(rows)
}

// RosterTableFromRows drops blank cells and unnamed columns. Duplicate team
// headers are rejected.
func RosterTableFromRows(rows [][]string) (models.RosterTable, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("roster sheet is empty")
	}

	header := rows[0]
	table := make(models.RosterTable)
	for col := range header {
		team := cell(header, col)
		if team == "" {
			continue
		}
		if _, dup := table[team]; dup {
			return nil, fmt.Errorf("duplicate team column %q", team)
		}

		picks := []string{}
		for _, row := range rows[1:] {
			if name := cell(row, col); name != "" {
				picks = append(picks, name)
			}
		}
		table[team] = picks
	}

	if len(table) == 0 {
		return nil, fmt.Errorf("roster sheet has no team columns")
	}
	return table, nil
}

// LoadAliasTable reads a two-column sheet of spreadsheet label and canonical
// player name. A leading header row whose first cell is "alias" is skipped.
func LoadAliasTable(path string) (models.AliasTable, error) {
	rows, err := ReadGrid(path)
	if err != nil {
		return nil, err
	}
	return AliasTableFromRows(rows)
}

func AliasTableFromRows(rows [][]string) (models.AliasTable, error) {
	aliases := make(models.AliasTable)
	for i, row := range rows {
		label, canonical := cell(row, 0), cell(row, 1)
		if i == 0 && strings.EqualFold(label, "alias") {
			continue
		}
		if label == "" && canonical == "" {
			continue
		}
		if label == "" || canonical == "" {
			return nil, fmt.Errorf("alias row %d: both label and player name are required", i+1)
		}
		aliases[label] = canonical
	}
	return aliases, nil
}
