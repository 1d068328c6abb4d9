package services

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"swipematch_server/models"

	"github.com/google/uuid"
)

// DefaultExpoPushURL is the Expo push API endpoint used when no override is
// configured
const DefaultExpoPushURL = "https://exp.host/--/api/v2/push/send"

const pushQueueSize = 64

type pushJob struct {
	ID           string
	Notification models.PushNotification
}

// PushService delivers push notifications off the hot path: callers enqueue,
// worker goroutines perform the HTTP call and log the outcome. Delivery is
// fire-and-forget; failures are logged and never retried.
type PushService struct {
	endpoint string
	client   *http.Client
	jobs     chan pushJob
	wg       sync.WaitGroup
}

// NewPushService starts the given number of delivery workers against the
// endpoint, defaulting to the Expo push API
func NewPushService(endpoint string, workers int) *PushService {
	if endpoint == "" {
		endpoint = DefaultExpoPushURL
	}
	if workers <= 0 {
		workers = 2
	}
	ps := &PushService{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		jobs:     make(chan pushJob, pushQueueSize),
	}
	for i := 0; i < workers; i++ {
		ps.wg.Add(1)
		go ps.worker()
	}
	return ps
}

// Enqueue hands a notification to the delivery workers. A full queue drops
// the notification rather than block match delivery on push latency.
func (ps *PushService) Enqueue(n models.PushNotification) {
	job := pushJob{ID: uuid.NewString(), Notification: n}
	select {
	case ps.jobs <- job:
	default:
		log.Printf("Push queue full, dropping notification %s to %s\n", job.ID, n.To)
	}
}

// Close stops accepting notifications and waits for in-flight deliveries
func (ps *PushService) Close() {
	close(ps.jobs)
	ps.wg.Wait()
}

func (ps *PushService) worker() {
	defer ps.wg.Done()
	for job := range ps.jobs {
		ps.deliver(job)
	}
}

func (ps *PushService) deliver(job pushJob) {
	body, err := json.Marshal(job.Notification)
	if err != nil {
		log.Printf("Error encoding push notification %s: %v\n", job.ID, err)
		return
	}

	req, err := http.NewRequest(http.MethodPost, ps.endpoint, bytes.NewReader(body))
	if err != nil {
		log.Printf("Error building push request %s: %v\n", job.ID, err)
		return
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := ps.client.Do(req)
	if err != nil {
		log.Printf("Error sending push notification %s: %v\n", job.ID, err)
		return
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		log.Printf("Push notification %s rejected with status %d: %s\n", job.ID, resp.StatusCode, respBody)
		return
	}
	log.Printf("Push notification %s response: %s\n", job.ID, respBody)
}
