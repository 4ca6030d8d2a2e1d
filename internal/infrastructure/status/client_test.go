package status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "github.com/haven-rp/warden/internal/shared/config"
)

func newTestClient(infoURL, playersURL string) *Client {
	return NewClient(&sharedConfig.GameServerConfig{
		InfoURL:    infoURL,
		PlayersURL: playersURL,
	})
}

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		want       string
	}{
		{"200 means online", http.StatusOK, LineOnline},
		{"503 means starting", http.StatusServiceUnavailable, LineStarting},
		{"404 means starting", http.StatusNotFound, LineStarting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer srv.Close()

			client := newTestClient(srv.URL, srv.URL)
			assert.Equal(t, tt.want, client.StatusLine(context.Background()))
		})
	}
}

func TestStatusLineUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := newTestClient(srv.URL, srv.URL)
	assert.Equal(t, LineOffline, client.StatusLine(context.Background()))
}

func TestPlayerCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1},{"id":2},{"id":3}]`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, srv.URL)
	count, err := client.PlayerCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestPlayersLine(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, srv.URL)
	assert.Equal(t, "0 players", client.PlayersLine(context.Background()))
}

func TestPlayersLineFallsBackOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, srv.URL)
	assert.Equal(t, "players unavailable", client.PlayersLine(context.Background()))
}
