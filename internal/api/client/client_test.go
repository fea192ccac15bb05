package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/kakwa/immowatch/pkg/types"
)

func TestCreateSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/searches", r.URL.Path)

		var req searchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Owner)
		assert.Equal(t, "75011", req.PostalCode)

		_ = json.NewEncoder(w).Encode(CreateSearchResult{
			Created: true,
			Search:  domain.SearchSpec{ID: "abc123", Owner: "alice"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)

	result, err := c.CreateSearch(context.Background(), &domain.SearchSpec{
		Owner:      "alice",
		PostalCode: "75011",
		MinSurface: "30",
		MaxPrice:   "1200",
		DealType:   domain.DealRent,
	})
	require.NoError(t, err)

	assert.True(t, result.Created)
	assert.Equal(t, "abc123", result.Search.ID)
}

func TestListSearches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/searches", r.URL.Path)
		assert.Equal(t, "alice", r.URL.Query().Get("owner"))

		_ = json.NewEncoder(w).Encode([]domain.SearchSpec{
			{ID: "abc123", Owner: "alice", PostalCode: "75011"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)

	specs, err := c.ListSearches(context.Background(), "alice")
	require.NoError(t, err)

	require.Len(t, specs, 1)
	assert.Equal(t, "75011", specs[0].PostalCode)
}

func TestDeleteSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/searches/abc123", r.URL.Path)
		assert.Equal(t, "alice", r.URL.Query().Get("owner"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL)

	require.NoError(t, c.DeleteSearch(context.Background(), "abc123", "alice"))
}

func TestRoomStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/stats/rooms", r.URL.Path)
		assert.Equal(t, "rent", r.URL.Query().Get("deal_type"))

		_ = json.NewEncoder(w).Encode([]domain.RoomBucket{
			{Rooms: 2, Count: 3, AvgSurface: 45, AvgPrice: 850},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)

	buckets, err := c.RoomStats(context.Background(), StatsQuery{Owner: "alice", DealType: "rent"})
	require.NoError(t, err)

	require.Len(t, buckets, 1)
	assert.Equal(t, 2, buckets[0].Rooms)
}

func TestTriggerCycleConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"title":"Conflict"}`, http.StatusConflict)
	}))
	defer srv.Close()

	c := New(srv.URL)

	err := c.TriggerCycle(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 409")
}

func TestAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)

	_, err := c.ListSearches(context.Background(), "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}
