package collector

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteSource(t *testing.T) {
	var gotAuth, gotSince string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/athletes", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[{"id":"a1","name":"Mia","sportId":"football","status":"active"}]`))
	})
	mux.HandleFunc("/api/v1/daily-loads", func(w http.ResponseWriter, r *http.Request) {
		gotSince = r.URL.Query().Get("since")
		w.Write([]byte(`[{"id":"l1","athleteId":"a1","date":"2026-10-17","trainingLoad":350,"rpe":5}]`))
	})
	mux.HandleFunc("/api/v1/injuries", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"i1","athleteId":"a1","type":"injury","bodyRegion":"Knee","status":"active","dateOccurred":"2026-10-01","dateResolved":null,"daysLost":null}]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	src := NewRemoteSource(srv.URL, "secret", "")
	ctx := context.Background()

	athletes, err := src.Athletes(ctx)
	require.NoError(t, err)
	require.Len(t, athletes, 1)
	assert.Equal(t, "football", athletes[0].SportID)
	assert.Equal(t, "Bearer secret", gotAuth)

	loads, err := src.DailyLoads(ctx, "2026-09-13")
	require.NoError(t, err)
	require.Len(t, loads, 1)
	assert.Equal(t, "2026-09-13", gotSince)
	assert.Equal(t, 350.0, loads[0].TrainingLoad)

	injuries, err := src.Injuries(ctx)
	require.NoError(t, err)
	require.Len(t, injuries, 1)
	assert.Nil(t, injuries[0].DaysLost)

	// settings endpoint is not registered: 404 means nothing stored
	o, err := src.Thresholds(ctx)
	require.NoError(t, err)
	assert.Nil(t, o)
}

func TestRemoteSource_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewRemoteSource(srv.URL, "", "").Athletes(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestRemoteSource_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	src := NewRemoteSource(srv.URL, "", "")

	_, err := src.Athletes(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errNotFound), "wrapped 404 keeps its identity")

	o, err := src.Thresholds(context.Background())
	require.NoError(t, err)
	assert.Nil(t, o)
}
