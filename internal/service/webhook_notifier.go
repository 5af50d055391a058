package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"weekly-lottery/internal/core/domain"
	"weekly-lottery/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	HeaderWebhookSignature = "X-Lottery-Signature"
	HeaderWebhookTimestamp = "X-Lottery-Timestamp"
)

var defaultWebhookRetryIntervals = []time.Duration{
	2 * time.Second,
	10 * time.Second,
	30 * time.Second,
}

// WebhookPayload is the JSON body posted for every notice.
type WebhookPayload struct {
	Kind        string `json:"kind"`
	Participant string `json:"participant,omitempty"`
	Currency    string `json:"currency,omitempty"`
	Amount      int64  `json:"amount,omitempty"`
	Message     string `json:"message"`
	Timestamp   int64  `json:"timestamp"`
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WebhookNotifier forwards notices to a host-side HTTP endpoint, which relays
// them as chat messages. Delivery is asynchronous with retries; notices are
// posted one at a time in the order they were raised.
type WebhookNotifier struct {
	url            string
	secret         string
	sigSvc         ports.SignatureService
	httpClient     HTTPClient
	retryIntervals []time.Duration
	log            zerolog.Logger
	wg             sync.WaitGroup

	mu       sync.Mutex
	queue    []queuedNotice
	draining bool
}

type queuedNotice struct {
	body []byte
	kind string
}

// NewWebhookNotifier creates a webhook notifier. An empty secret sends
// unsigned requests.
func NewWebhookNotifier(url, secret string, sigSvc ports.SignatureService, httpClient HTTPClient, log zerolog.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		url:            url,
		secret:         secret,
		sigSvc:         sigSvc,
		httpClient:     httpClient,
		retryIntervals: defaultWebhookRetryIntervals,
		log:            log,
	}
}

// NotifyParticipant posts a notice addressed to one participant.
func (n *WebhookNotifier) NotifyParticipant(ctx context.Context, participant uuid.UUID, notice domain.Notice) error {
	if notice.Participant == nil {
		notice.Participant = &participant
	}
	return n.enqueue(notice)
}

// Broadcast posts a server-wide notice.
func (n *WebhookNotifier) Broadcast(_ context.Context, notice domain.Notice) error {
	return n.enqueue(notice)
}

func (n *WebhookNotifier) enqueue(notice domain.Notice) error {
	payload := WebhookPayload{
		Kind:      string(notice.Kind),
		Currency:  notice.Currency,
		Amount:    notice.Amount,
		Message:   notice.Message,
		Timestamp: notice.At.Unix(),
	}
	if notice.Participant != nil {
		payload.Participant = notice.Participant.String()
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.queue = append(n.queue, queuedNotice{body: body, kind: payload.Kind})
	if !n.draining {
		n.draining = true
		n.wg.Add(1)
		go n.drain()
	}
	return nil
}

// drain delivers queued notices until the queue is empty.
func (n *WebhookNotifier) drain() {
	defer n.wg.Done()
	for {
		n.mu.Lock()
		if len(n.queue) == 0 {
			n.draining = false
			n.mu.Unlock()
			return
		}
		next := n.queue[0]
		n.queue = n.queue[1:]
		n.mu.Unlock()

		n.deliverWithRetries(next.body, next.kind)
	}
}

// deliverWithRetries attempts delivery until a 2xx response or the retry
// intervals run out.
func (n *WebhookNotifier) deliverWithRetries(body []byte, kind string) {
	log := n.log.With().Str("kind", kind).Logger()

	for attempt := 0; attempt <= len(n.retryIntervals); attempt++ {
		if attempt > 0 {
			time.Sleep(n.retryIntervals[attempt-1])
		}

		req, err := http.NewRequest(http.MethodPost, n.url, bytes.NewReader(body))
		if err != nil {
			log.Error().Err(err).Int("attempt", attempt+1).Msg("webhook: failed to create request")
			return
		}
		req.Header.Set("Content-Type", "application/json")
		if n.secret != "" {
			ts := time.Now().Unix()
			req.Header.Set(HeaderWebhookTimestamp, strconv.FormatInt(ts, 10))
			req.Header.Set(HeaderWebhookSignature, n.sigSvc.Sign(n.secret, SigningPayload(ts, body)))
		}

		resp, err := n.httpClient.Do(req)
		if err != nil {
			log.Warn().Err(err).Int("attempt", attempt+1).Msg("webhook: delivery failed")
			continue
		}
		if resp.Body != nil {
			resp.Body.Close()
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Debug().Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("webhook: delivered")
			return
		}

		log.Warn().Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("webhook: non-2xx response, retrying")
	}

	log.Error().Msg("webhook: all retry attempts exhausted")
}

// Close waits for in-flight deliveries or until ctx is done.
func (n *WebhookNotifier) Close(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
