package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"weekly-lottery/internal/core/domain"
	"weekly-lottery/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// mockHTTPClient implements HTTPClient for testing.
type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func okResponse() *http.Response {
	return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader(""))}
}

func TestWebhookNotifier_PostsSignedPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sigSvc := mocks.NewMockSignatureService(ctrl)
	sigSvc.EXPECT().Sign("bridge-secret", gomock.Any()).DoAndReturn(func(_ string, payload string) string {
		assert.Contains(t, payload, `"kind":"PRIZE_AWARDED"`)
		return "signature-hash"
	})

	requests := make(chan *http.Request, 1)
	bodies := make(chan []byte, 1)
	httpClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			body, _ := io.ReadAll(req.Body)
			requests <- req
			bodies <- body
			return okResponse(), nil
		},
	}

	n := NewWebhookNotifier("https://bridge.example.com/notices", "bridge-secret", sigSvc, httpClient, newTestLogger())
	p := uuid.New()
	at := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	notice := domain.PrizeAwardedNotice(p, domain.CurrencyInfo{ID: "tokens", Name: "Tokens"}, 500, "500 Tokens", at)

	require.NoError(t, n.NotifyParticipant(context.Background(), p, notice))
	require.NoError(t, n.Close(context.Background()))

	req := <-requests
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, "signature-hash", req.Header.Get(HeaderWebhookSignature))
	_, err := strconv.ParseInt(req.Header.Get(HeaderWebhookTimestamp), 10, 64)
	assert.NoError(t, err)

	var payload WebhookPayload
	require.NoError(t, json.Unmarshal(<-bodies, &payload))
	assert.Equal(t, "PRIZE_AWARDED", payload.Kind)
	assert.Equal(t, p.String(), payload.Participant)
	assert.Equal(t, "tokens", payload.Currency)
	assert.Equal(t, int64(500), payload.Amount)
	assert.Equal(t, at.Unix(), payload.Timestamp)
}

func TestWebhookNotifier_UnsignedWithoutSecret(t *testing.T) {
	requests := make(chan *http.Request, 1)
	httpClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			requests <- req
			return okResponse(), nil
		},
	}

	n := NewWebhookNotifier("https://bridge.example.com/notices", "", nil, httpClient, newTestLogger())
	require.NoError(t, n.Broadcast(context.Background(), domain.DrawingStartedNotice(time.Now())))
	require.NoError(t, n.Close(context.Background()))

	req := <-requests
	assert.Empty(t, req.Header.Get(HeaderWebhookSignature))
	assert.Empty(t, req.Header.Get(HeaderWebhookTimestamp))
}

func TestWebhookNotifier_RetriesUntilSuccess(t *testing.T) {
	var calls atomic.Int32
	httpClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			switch calls.Add(1) {
			case 1:
				return nil, errors.New("connection refused")
			case 2:
				return &http.Response{StatusCode: http.StatusBadGateway, Body: io.NopCloser(strings.NewReader(""))}, nil
			default:
				return okResponse(), nil
			}
		},
	}

	n := NewWebhookNotifier("https://bridge.example.com/notices", "", nil, httpClient, newTestLogger())
	n.retryIntervals = []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond}

	require.NoError(t, n.Broadcast(context.Background(), domain.DrawingStartedNotice(time.Now())))
	require.NoError(t, n.Close(context.Background()))
	assert.Equal(t, int32(3), calls.Load())
}

func TestWebhookNotifier_GivesUp(t *testing.T) {
	var calls atomic.Int32
	httpClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			calls.Add(1)
			return &http.Response{StatusCode: http.StatusInternalServerError, Body: io.NopCloser(strings.NewReader(""))}, nil
		},
	}

	n := NewWebhookNotifier("https://bridge.example.com/notices", "", nil, httpClient, newTestLogger())
	n.retryIntervals = []time.Duration{time.Millisecond, time.Millisecond}

	require.NoError(t, n.Broadcast(context.Background(), domain.DrawingStartedNotice(time.Now())))
	require.NoError(t, n.Close(context.Background()))
	assert.Equal(t, int32(3), calls.Load())
}

func TestWebhookNotifier_PreservesOrder(t *testing.T) {
	var mu sync.Mutex
	var kinds []string
	var calls atomic.Int32
	httpClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			var payload WebhookPayload
			_ = json.NewDecoder(req.Body).Decode(&payload)
			if calls.Add(1) == 1 {
				// the first notice is slow and fails once
				time.Sleep(20 * time.Millisecond)
				return nil, errors.New("connection reset")
			}
			mu.Lock()
			kinds = append(kinds, payload.Kind)
			mu.Unlock()
			return okResponse(), nil
		},
	}

	n := NewWebhookNotifier("https://bridge.example.com/notices", "", nil, httpClient, newTestLogger())
	n.retryIntervals = []time.Duration{time.Millisecond}

	at := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	p := uuid.New()
	info := domain.CurrencyInfo{ID: "tokens", Name: "Tokens"}
	ctx := context.Background()
	require.NoError(t, n.Broadcast(ctx, domain.DrawingStartedNotice(at)))
	require.NoError(t, n.Broadcast(ctx, domain.WinnerNotice(p, info, 500, "500 Tokens", at)))
	require.NoError(t, n.NotifyParticipant(ctx, p, domain.PrizeAwardedNotice(p, info, 500, "500 Tokens", at)))
	require.NoError(t, n.Broadcast(ctx, domain.NextDrawingNotice(at.AddDate(0, 0, 7), at)))
	require.NoError(t, n.Close(ctx))

	assert.Equal(t, []string{
		string(domain.NoticeDrawingStarted),
		string(domain.NoticeWinner),
		string(domain.NoticePrizeAwarded),
		string(domain.NoticeNextDrawing),
	}, kinds)
}

func TestWebhookNotifier_CloseHonoursContext(t *testing.T) {
	release := make(chan struct{})
	httpClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			<-release
			return okResponse(), nil
		},
	}

	n := NewWebhookNotifier("https://bridge.example.com/notices", "", nil, httpClient, newTestLogger())
	require.NoError(t, n.Broadcast(context.Background(), domain.DrawingStartedNotice(time.Now())))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, n.Close(ctx), context.DeadlineExceeded)

	close(release)
	assert.NoError(t, n.Close(context.Background()))
}
