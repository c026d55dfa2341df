package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsmap/pkg/aggregator"
	"newsmap/pkg/domain"
)

// fakeAggregator returns a canned snapshot and records the requested locale
type fakeAggregator struct {
	result     *aggregator.Result
	err        error
	lastTarget domain.Lang
}

func (f *fakeAggregator) Run(_ context.Context, target domain.Lang) (*aggregator.Result, error) {
	f.lastTarget = target
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeConfig struct{}

func (f *fakeConfig) GetServerConfig() (string, time.Duration) { return ":0", 30 * time.Second }

func testRecords() []domain.NewsRecord {
	return []domain.NewsRecord{
		{
			ID:       "Src-guid1",
			Title:    "Tehran metro opens new line",
			Link:     "http://example.com/1",
			PubDate:  time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
			Source:   "Src",
			Category: domain.CategoryOther,
			Location: &domain.Location{Lat: 35.6892, Lng: 51.389, Name: "Tehran", FaName: "تهران"},
		},
		{
			ID:       "Src-guid2",
			Title:    "Second story",
			Link:     "http://example.com/2",
			PubDate:  time.Date(2024, 6, 1, 11, 0, 0, 0, time.UTC),
			Source:   "Src",
			Category: domain.CategoryPolitics,
		},
	}
}

func TestNewsHandler(t *testing.T) {
	agg := &fakeAggregator{result: &aggregator.Result{
		Records:     testRecords(),
		LastUpdated: time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC),
	}}
	srv := New(&fakeConfig{}, agg, "test", false)

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/news")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body struct {
		Success     bool                `json:"success"`
		Count       int                 `json:"count"`
		News        []domain.NewsRecord `json:"news"`
		LastUpdated time.Time           `json:"lastUpdated"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.True(t, body.Success)
	assert.Equal(t, 2, body.Count)
	require.Len(t, body.News, 2)
	assert.Equal(t, "Tehran metro opens new line", body.News[0].Title)
	require.NotNil(t, body.News[0].Location)
	assert.Equal(t, "تهران", body.News[0].Location.FaName)
	assert.Nil(t, body.News[1].Location)
	assert.Equal(t, domain.LangEN, agg.lastTarget)
}

func TestNewsHandler_LocaleResolution(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		want   domain.Lang
	}{
		{"japanese", "ja", domain.LangJA},
		{"english", "en", domain.LangEN},
		{"unsupported falls back to primary", "de", domain.LangEN},
		{"empty falls back to primary", "", domain.LangEN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := &fakeAggregator{result: &aggregator.Result{LastUpdated: time.Now()}}
			srv := New(&fakeConfig{}, agg, "test", false)

			ts := httptest.NewServer(srv.router)
			defer ts.Close()

			resp, err := http.Get(ts.URL + "/api/v1/news?locale=" + tt.locale)
			require.NoError(t, err)
			resp.Body.Close()

			assert.Equal(t, tt.want, agg.lastTarget)
		})
	}
}

func TestNewsHandler_EmptySnapshot(t *testing.T) {
	agg := &fakeAggregator{result: &aggregator.Result{LastUpdated: time.Now()}}
	srv := New(&fakeConfig{}, agg, "test", false)

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/news")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	// empty list serializes as [], not null
	assert.Equal(t, []interface{}{}, body["news"])
	assert.Equal(t, float64(0), body["count"])
}

func TestNewsHandler_AggregationFailure(t *testing.T) {
	agg := &fakeAggregator{err: fmt.Errorf("merge blew up")}
	srv := New(&fakeConfig{}, agg, "test", false)

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/news")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Internal Server Error", body["error"])
}

func TestStatusHandler(t *testing.T) {
	srv := New(&fakeConfig{}, &fakeAggregator{result: &aggregator.Result{}}, "v1.2.3", false)

	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "v1.2.3", body["version"])
}
