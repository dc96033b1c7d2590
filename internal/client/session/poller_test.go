package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addiskitchen/platform/internal/client/gateway"
)

func TestPoller_ChecksAndStops(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"id": "u1", "name": "Admin", "role": "admin"},
		})
	}))
	defer srv.Close()

	tokens := NewMemoryTokenStore("tok")
	client := gateway.NewClient(gateway.Config{BaseURL: srv.URL}, tokens, gateway.NewCache())
	gw := gateway.New(client)

	var users atomic.Int32
	poller := NewPoller(gw, 20*time.Millisecond, func(u *gateway.User) {
		users.Add(1)
	})

	poller.Start(context.Background())
	// Starting twice is a no-op
	poller.Start(context.Background())

	require.Eventually(t, func() bool { return users.Load() >= 2 }, time.Second, 5*time.Millisecond)
	poller.Stop()

	settled := calls.Load()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, settled, calls.Load(), "a stopped poller issues no further checks")

	// Stopping again is safe
	poller.Stop()
}

func TestPoller_ExpiredSessionClearsCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "expired"})
	}))
	defer srv.Close()

	tokens := NewMemoryTokenStore("stale")
	client := gateway.NewClient(gateway.Config{BaseURL: srv.URL}, tokens, gateway.NewCache())

	var expired atomic.Int32
	client.OnSessionExpired(func() { expired.Add(1) })
	gw := gateway.New(client)

	poller := NewPoller(gw, time.Hour, nil)
	poller.Start(context.Background())
	defer poller.Stop()

	require.Eventually(t, func() bool { return expired.Load() >= 1 }, time.Second, 5*time.Millisecond)
	assert.Empty(t, tokens.Token())
}
