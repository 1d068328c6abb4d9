package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"swipematch_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushService_DeliversNotification(t *testing.T) {
	var mu sync.Mutex
	var received []models.PushNotification
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var n models.PushNotification
		err := json.NewDecoder(r.Body).Decode(&n)
		require.NoError(t, err)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		mu.Lock()
		received = append(received, n)
		mu.Unlock()
		w.Write([]byte(`{"data":{"status":"ok"}}`))
	}))
	defer ts.Close()

	ps := NewPushService(ts.URL, 1)
	ps.Enqueue(models.PushNotification{
		To:    "ExponentPushToken[a]",
		Sound: "default",
		Title: "New Match!",
		Body:  "You matched with Bob",
		Data:  map[string]interface{}{"someData": "Match Details"},
	})
	ps.Close()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 1)
	assert.Equal(t, "ExponentPushToken[a]", received[0].To)
	assert.Equal(t, "New Match!", received[0].Title)
	assert.Equal(t, "You matched with Bob", received[0].Body)
}

func TestPushService_ServerErrorIsSwallowed(t *testing.T) {
	var mu sync.Mutex
	requests := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests++
		mu.Unlock()
		http.Error(w, "push provider down", http.StatusInternalServerError)
	}))
	defer ts.Close()

	ps := NewPushService(ts.URL, 1)
	ps.Enqueue(models.PushNotification{To: "ExponentPushToken[a]"})
	ps.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, requests)
}

func TestPushService_UnreachableEndpointIsSwallowed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // nothing listening anymore

	ps := NewPushService(ts.URL, 1)
	ps.Enqueue(models.PushNotification{To: "ExponentPushToken[a]"})
	ps.Close()
}

func TestPushService_FullQueueDropsWithoutBlocking(t *testing.T) {
	// No workers draining: a one-slot queue must drop the second job
	// instead of blocking the caller
	ps := &PushService{
		endpoint: DefaultExpoPushURL,
		client:   &http.Client{},
		jobs:     make(chan pushJob, 1),
	}

	ps.Enqueue(models.PushNotification{To: "ExponentPushToken[a]"})
	ps.Enqueue(models.PushNotification{To: "ExponentPushToken[b]"})

	assert.Len(t, ps.jobs, 1)
}
