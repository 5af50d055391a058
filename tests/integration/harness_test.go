package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"weekly-lottery/config"
	"weekly-lottery/internal/adapter/currency"
	httpHandler "weekly-lottery/internal/adapter/http/handler"
	"weekly-lottery/internal/adapter/http/middleware"
	"weekly-lottery/internal/adapter/storage/file"
	"weekly-lottery/internal/adapter/storage/memory"
	redisStorage "weekly-lottery/internal/adapter/storage/redis"
	"weekly-lottery/internal/core/ports"
	"weekly-lottery/internal/service"
	"weekly-lottery/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// Wednesday; the first Sunday-midnight drawing is 3.5 days away.
var appStart = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// appOptions lets a test share state between two app instances to simulate
// a restart.
type appOptions struct {
	dataDir string
	redis   *miniredis.Miniredis
	gems    *currency.MemoryCurrency
	clock   *testClock
}

// testApp is the full stack: real HTTP layer, middleware, lottery facade and
// scheduler-facing service, backed by file state, miniredis and in-memory
// balances.
type testApp struct {
	server  *httptest.Server
	lottery *service.LotteryServiceImpl
	gems    *currency.MemoryCurrency
	redis   *miniredis.Miniredis
	rdb     *goredis.Client
	clock   *testClock
	tokens  ports.TokenService
	opts    appOptions
}

func newTestApp(t *testing.T, opts appOptions) *testApp {
	t.Helper()

	if opts.dataDir == "" {
		opts.dataDir = t.TempDir()
	}
	if opts.redis == nil {
		opts.redis = miniredis.RunT(t)
	}
	if opts.gems == nil {
		opts.gems = currency.NewMemoryCurrency(currency.NewDescriptor("gems", "Gems", "♦", "Gems"))
	}
	if opts.clock == nil {
		opts.clock = &testClock{now: appStart}
	}

	rdb := goredis.NewClient(&goredis.Options{Addr: opts.redis.Addr()})
	log := logger.New("error", false)

	registry := service.NewCurrencyRegistry()
	require.NoError(t, registry.Register(opts.gems))
	require.NoError(t, registry.Register(currency.NewLedgerCurrency(currency.NewDescriptor("tokens", "Tokens", "⛃", "Tokens"), rdb)))

	cadence, err := service.NewCadence("0 0 * * 0", time.UTC)
	require.NoError(t, err)

	lottery := service.NewLotteryService(service.LotteryDeps{
		Registry:    registry,
		Cadence:     cadence,
		StateStore:  file.NewStateStore(opts.dataDir, log),
		Rewards:     file.NewRewardStore(opts.dataDir, log),
		Presence:    redisStorage.NewPresenceStore(rdb),
		Notifier:    service.NewLogNotifier(log),
		History:     memory.NewDrawHistory(50),
		Persistence: service.PersisterOptions{Timeout: time.Second, Retries: 2, RetryDelay: 10 * time.Millisecond},
		Clock:       opts.clock.Now,
		Logger:      log,
	})
	require.NoError(t, lottery.Recover(context.Background()))

	tokens := service.NewJWTTokenService("integration-secret", time.Hour, "weekly-lottery")
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Lottery:         lottery,
		TokenSvc:        tokens,
		SubmissionGuard: redisStorage.NewNonceStore(rdb),
		NonceTTL:        time.Minute,
		RateLimitRules: middleware.RateLimitRules(config.RateLimitConfig{
			EntryLimit: 1000, EntryWindow: time.Minute,
			ReadLimit: 1000, ReadWindow: time.Minute,
		}),
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		HistoryLimit:   10,
		Logger:         log,
	})

	app := &testApp{
		server:  httptest.NewServer(router),
		lottery: lottery,
		gems:    opts.gems,
		redis:   opts.redis,
		rdb:     rdb,
		clock:   opts.clock,
		tokens:  tokens,
		opts:    opts,
	}
	t.Cleanup(app.close)
	return app
}

// close flushes the lottery and releases the server. Safe to call twice.
func (a *testApp) close() {
	if a.server == nil {
		return
	}
	a.server.Close()
	a.server = nil
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = a.lottery.Close(ctx)
	_ = a.rdb.Close()
}

type apiResponse struct {
	status int
	body   map[string]interface{}
}

func (r apiResponse) data() map[string]interface{} {
	d, _ := r.body["data"].(map[string]interface{})
	return d
}

func (r apiResponse) list() []interface{} {
	d, _ := r.body["data"].([]interface{})
	return d
}

func (r apiResponse) errorCode() string {
	code, _ := r.body["error_code"].(string)
	return code
}

func (a *testApp) call(t *testing.T, method, path string, body interface{}, headers map[string]string) apiResponse {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := apiResponse{status: resp.StatusCode}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out.body), string(raw))
	}
	return out
}

func (a *testApp) enter(t *testing.T, currencyID string, participant uuid.UUID, amount int64) apiResponse {
	t.Helper()
	return a.call(t, http.MethodPost, "/api/v1/entries", map[string]interface{}{
		"currency":       currencyID,
		"participant_id": participant.String(),
		"amount":         amount,
	}, map[string]string{middleware.HeaderParticipantID: participant.String()})
}

func (a *testApp) connect(t *testing.T, participant uuid.UUID) apiResponse {
	t.Helper()
	return a.call(t, http.MethodPost, "/api/v1/participants/"+participant.String()+"/connect", nil, nil)
}

func (a *testApp) adminDraw(t *testing.T) apiResponse {
	t.Helper()
	token, _, err := a.tokens.Generate("ops", middleware.RoleAdmin)
	require.NoError(t, err)
	return a.call(t, http.MethodPost, "/api/v1/admin/draw", nil, map[string]string{"Authorization": "Bearer " + token})
}

func (a *testApp) gemBalance(t *testing.T, participant uuid.UUID) int64 {
	t.Helper()
	balance, err := a.gems.Balance(context.Background(), participant)
	require.NoError(t, err)
	return balance
}

func (a *testApp) poolTotal(t *testing.T, currencyID string) float64 {
	t.Helper()
	resp := a.call(t, http.MethodGet, "/api/v1/pools/"+currencyID, nil, nil)
	require.Equal(t, http.StatusOK, resp.status)
	return resp.data()["total"].(float64)
}
