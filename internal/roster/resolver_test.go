package roster

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/playoffpool/internal/models"
)

func testDirectory() *Directory {
	return NewDirectory(map[string]models.DirectoryEntry{
		"4881": {DisplayName: "Lamar Jackson", Position: models.PositionQB, TeamAbbrev: "BAL"},
		"1234": {DisplayName: "Lamar Jackson", Position: models.PositionRB},
		"4046": {DisplayName: "Patrick Mahomes", Position: models.PositionQB, TeamAbbrev: "KC"},
		"1466": {DisplayName: "Travis Kelce", Position: models.PositionTE, TeamAbbrev: "KC"},
		"7000": {DisplayName: "Mike Williams", Position: models.PositionWR, TeamAbbrev: "NYJ"},
		"7001": {DisplayName: "Mike Williams", Position: models.PositionWR, TeamAbbrev: "LAC"},
		"SF":   {TeamAbbrev: "SF"},
		"XX":   {},
	})
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestNewDirectory(t *testing.T) {
	dir := testDirectory()

	assert.Equal(t, 7, dir.Len())
	assert.Equal(t, []string{"Lamar Jackson", "Mike Williams", "Patrick Mahomes", "SF", "Travis Kelce"}, dir.Names())

	def := dir.Lookup("SF")
	require.Len(t, def, 1)
	assert.Equal(t, models.Player{ID: "SF", DisplayName: "SF", Position: models.PositionDEF, TeamAbbrev: "SF"}, def[0])

	assert.Empty(t, dir.Lookup("XX"))
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(testDirectory(), models.AliasTable{
		"Mahomes":     "Patrick Mahomes",
		"49ers D/ST ": "SF",
	}, nil, quietLogger())

	players, err := r.Resolve([]string{"Mahomes", "Travis Kelce", "49ers D/ST", "Nobody Special", " Travis Kelce "})
	require.NoError(t, err)
	require.Len(t, players, 5)

	assert.Equal(t, "4046", players[0].ID)
	assert.Equal(t, "1466", players[1].ID)
	assert.Equal(t, models.PositionDEF, players[2].Position)
	assert.Equal(t, models.Player{DisplayName: "Nobody Special", Position: models.PositionUnknown}, players[3])
	assert.False(t, players[3].Resolved())
	assert.Equal(t, "1466", players[4].ID)
}

func TestResolver_Ambiguous(t *testing.T) {
	tests := []struct {
		name    string
		rules   DisambiguationRules
		wantID  string
		wantErr bool
	}{
		{name: "no rule", rules: nil, wantErr: true},
		{name: "rule picks QB", rules: DisambiguationRules{"Lamar Jackson": models.PositionQB}, wantID: "4881"},
		{name: "rule picks RB", rules: DisambiguationRules{"Lamar Jackson": models.PositionRB}, wantID: "1234"},
		{name: "rule names missing position", rules: DisambiguationRules{"Lamar Jackson": models.PositionK}, wantErr: true},
		{name: "default rules", rules: DefaultRules(), wantID: "4881"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(testDirectory(), nil, tt.rules, quietLogger())
			players, err := r.Resolve([]string{"Lamar Jackson"})
			if tt.wantErr {
				var ambErr *AmbiguousPlayerError
				require.ErrorAs(t, err, &ambErr)
				assert.Equal(t, "Lamar Jackson", ambErr.Name)
				assert.Equal(t, []models.Position{models.PositionQB, models.PositionRB}, ambErr.Positions)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, players[0].ID)
		})
	}
}

func TestResolver_SamePositionCollisionPicksLowestID(t *testing.T) {
	r := NewResolver(testDirectory(), nil, nil, quietLogger())

	players, err := r.Resolve([]string{"Mike Williams"})
	require.NoError(t, err)
	assert.Equal(t, "7000", players[0].ID)
}

func TestResolver_ResolveAll(t *testing.T) {
	r := NewResolver(testDirectory(), nil, nil, quietLogger())

	entries, err := r.ResolveAll(models.RosterTable{
		"Zed":   {"Travis Kelce"},
		"Alpha": {"Patrick Mahomes", "SF"},
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Alpha", entries[0].Team)
	assert.Len(t, entries[0].Players, 2)
	assert.Equal(t, "Zed", entries[1].Team)

	_, err = r.ResolveAll(models.RosterTable{"Alpha": {"Lamar Jackson"}})
	var ambErr *AmbiguousPlayerError
	assert.ErrorAs(t, err, &ambErr)
	assert.Contains(t, err.Error(), "Alpha")
}

func TestResolver_LogsSuggestion(t *testing.T) {
	var buf bytes.Buffer
	r := NewResolver(testDirectory(), nil, nil, slog.New(slog.NewTextHandler(&buf, nil)))

	_, err := r.Resolve([]string{"Travis Kelsey"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "suggestion=\"Travis Kelce\"")
}

func TestResolver_AliasTableIsCopied(t *testing.T) {
	aliases := models.AliasTable{"Mahomes": "Patrick Mahomes"}
	r := NewResolver(testDirectory(), aliases, nil, quietLogger())
	aliases["Mahomes"] = "Travis Kelce"

	players, err := r.Resolve([]string{"Mahomes"})
	require.NoError(t, err)
	assert.Equal(t, "4046", players[0].ID)
}

func TestBestMatch(t *testing.T) {
	candidates := []string{"Coach Dad", "Beyond Cursed", "UGF Pandas", "Team InvincibleVince"}

	tests := []struct {
		query string
		want  string
		ok    bool
	}{
		{query: "coach dad", want: "Coach Dad", ok: true},
		{query: "pandas", want: "UGF Pandas", ok: true},
		{query: "Beyond Curse", want: "Beyond Cursed", ok: true},
		{query: "zzzz", ok: false},
		{query: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, ok := BestMatch(tt.query, candidates, 0.6)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
