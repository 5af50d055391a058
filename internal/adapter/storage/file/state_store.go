// Package file persists lottery data as YAML files under a data directory.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"weekly-lottery/internal/core/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// StateFileName is the state file inside the data directory.
const StateFileName = "lottery_data.yml"

type stateDocument struct {
	NextDrawing string                          `yaml:"next_drawing"`
	SavedAt     string                          `yaml:"saved_at,omitempty"`
	Entries     map[string]map[string]yaml.Node `yaml:"entries"`
}

type stateOutput struct {
	NextDrawing string                      `yaml:"next_drawing"`
	SavedAt     string                      `yaml:"saved_at,omitempty"`
	Entries     map[string]map[string]int64 `yaml:"entries"`
}

// StateStore implements ports.StateStore on a single YAML file.
type StateStore struct {
	path string
	mu   sync.Mutex
	log  zerolog.Logger
}

// NewStateStore stores state in dir/lottery_data.yml.
func NewStateStore(dir string, log zerolog.Logger) *StateStore {
	return &StateStore{path: filepath.Join(dir, StateFileName), log: log}
}

// Path returns the state file location.
func (s *StateStore) Path() string {
	return s.path
}

func (s *StateStore) Save(ctx context.Context, state domain.LotteryState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := stateOutput{
		NextDrawing: state.NextDrawing.Format(time.RFC3339),
		Entries:     make(map[string]map[string]int64, len(state.Entries)),
	}
	if !state.SavedAt.IsZero() {
		doc.SavedAt = state.SavedAt.Format(time.RFC3339)
	}
	for currency, pool := range state.Entries {
		out := make(map[string]int64, len(pool))
		for p, amount := range pool {
			if amount > 0 {
				out[p.String()] = amount
			}
		}
		doc.Entries[currency] = out
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode lottery state: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return writeAtomic(s.path, data)
}

// Load returns nil, nil when the file does not exist. Records that cannot be
// read are skipped with a warning; a file that is not YAML at all is an error.
func (s *StateStore) Load(ctx context.Context) (*domain.LotteryState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	data, err := os.ReadFile(s.path)
	s.mu.Unlock()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var doc stateDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}

	state := domain.NewLotteryState(time.Time{})
	if doc.NextDrawing != "" {
		next, err := time.Parse(time.RFC3339, doc.NextDrawing)
		if err != nil {
			s.log.Warn().Err(err).Str("value", doc.NextDrawing).Msg("ignoring unreadable next drawing time")
		} else {
			state.NextDrawing = next
		}
	}
	if doc.SavedAt != "" {
		if saved, err := time.Parse(time.RFC3339, doc.SavedAt); err == nil {
			state.SavedAt = saved
		}
	}

	for currency, records := range doc.Entries {
		id := domain.NormalizeCurrencyID(currency)
		pool := make(map[uuid.UUID]int64, len(records))
		for key, node := range records {
			p, err := uuid.Parse(key)
			if err != nil {
				s.log.Warn().Str("currency", id).Str("participant", key).Msg("skipping entry with invalid participant id")
				continue
			}
			var amount int64
			if err := node.Decode(&amount); err != nil || amount <= 0 {
				s.log.Warn().Str("currency", id).Str("participant", key).Str("amount", node.Value).
					Msg("skipping entry with invalid amount")
				continue
			}
			pool[p] += amount
		}
		if len(pool) > 0 {
			state.Entries[id] = pool
		}
	}
	return state, nil
}
