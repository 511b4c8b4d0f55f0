package fantasy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/playoffpool/internal/api/sleeper"
	"github.com/omarshaarawi/playoffpool/internal/config"
	"github.com/omarshaarawi/playoffpool/internal/models"
)

func newTestAPI(t *testing.T, handler http.HandlerFunc) *API {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := sleeper.NewClient(config.SleeperAPI{
		BaseURL:    srv.URL,
		Season:     "2024",
		ScoringKey: "pts_half_ppr",
		Timeout:    5 * time.Second,
	})
	return NewAPI(sleeper.NewAPI(client))
}

func TestAPI_GetRoundTables(t *testing.T) {
	var paths []string
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/stats/nfl/post/2024/1":
			w.Write([]byte(`{"4046": {"pts_half_ppr": 18}}`))
		case "/stats/nfl/post/2024/5":
			w.Write([]byte(`{"4046": {"pts_half_ppr": 31.5}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	tables, err := api.GetRoundTables(context.Background(), models.RoundConfig{
		{Name: "Wildcard", Week: 1, Multiplier: 1},
		{Name: "Super Bowl", Week: 5, Multiplier: 2.5},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"/stats/nfl/post/2024/1", "/stats/nfl/post/2024/5"}, paths)
	assert.Equal(t, 18.0, tables["Wildcard"].Points("4046"))
	assert.Equal(t, 31.5, tables["Super Bowl"].Points("4046"))
}

func TestAPI_GetRoundTables_FailsWhole(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/stats/nfl/post/2024/2" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{}`))
	})

	tables, err := api.GetRoundTables(context.Background(), models.RoundConfig{
		{Name: "Wildcard", Week: 1, Multiplier: 1},
		{Name: "Divisional", Week: 2, Multiplier: 1.5},
	})
	require.ErrorContains(t, err, "round Divisional")
	assert.Nil(t, tables)
}
