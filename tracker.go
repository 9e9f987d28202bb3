package pluralize

import (
	"context"
	"errors"
	"sync"
)

// CounterStore persists per-player join counts. Implementations must be
// safe for concurrent use.
type CounterStore interface {
	// Increment adds one to the player's count and returns the new value.
	Increment(ctx context.Context, playerID string) (int64, error)
	// Count returns the player's current count, zero when never seen.
	Count(ctx context.Context, playerID string) (int64, error)
}

// MemoryCounterStore keeps counts in process memory. Counts do not
// survive restarts; use RedisCounterStore when persistence or sharing
// across servers is needed.
type MemoryCounterStore struct {
	mu     sync.Mutex
	counts map[string]int64
}

var _ CounterStore = &MemoryCounterStore{}

func NewMemoryCounterStore() *MemoryCounterStore {
	return &MemoryCounterStore{counts: make(map[string]int64)}
}

func (s *MemoryCounterStore) Increment(_ context.Context, playerID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.counts == nil {
		s.counts = make(map[string]int64)
	}
	s.counts[playerID]++
	return s.counts[playerID], nil
}

func (s *MemoryCounterStore) Count(_ context.Context, playerID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.counts[playerID], nil
}

// Welcome is the rendered join message for a player, along with the data
// that produced it.
type Welcome struct {
	PlayerID string
	Count    int64
	Category Category
	Key      string
	Text     string
	// Missing reports that no translation existed and Text degraded to
	// the assembled key.
	Missing bool
}

// Tracker counts player joins and renders the localized "you have joined
// N times" message for each one. The translation side never blocks a
// join: a missing template degrades to the assembled message key.
type Tracker struct {
	store      CounterStore
	translator CountTranslator
	keyPrefix  string
}

// DefaultWelcomeKeyPrefix is the message-key prefix the tracker appends
// plural categories to, e.g. "message.welcome.singular".
const DefaultWelcomeKeyPrefix = "message.welcome"

type TrackerOption func(*Tracker) error

func WithTrackerCounterStore(store CounterStore) TrackerOption {
	return func(t *Tracker) error {
		t.store = store
		return nil
	}
}

func WithTrackerKeyPrefix(prefix string) TrackerOption {
	return func(t *Tracker) error {
		if prefix == "" {
			return errors.New("pluralize: empty tracker key prefix")
		}
		t.keyPrefix = prefix
		return nil
	}
}

func NewTracker(translator CountTranslator, opts ...TrackerOption) (*Tracker, error) {
	if translator == nil {
		return nil, errors.New("pluralize: tracker requires a translator")
	}

	tracker := &Tracker{
		translator: translator,
		keyPrefix:  DefaultWelcomeKeyPrefix,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(tracker); err != nil {
			return nil, err
		}
	}

	if tracker.store == nil {
		tracker.store = NewMemoryCounterStore()
	}

	return tracker, nil
}

// RecordJoin increments the player's join count and returns the welcome
// message rendered for the player's language tag. Only the counter store
// can fail; translation misses are reported through Welcome.Missing with
// the assembled key as the text.
func (t *Tracker) RecordJoin(ctx context.Context, playerID, languageTag string) (Welcome, error) {
	count, err := t.store.Increment(ctx, playerID)
	if err != nil {
		return Welcome{}, err
	}

	return t.render(playerID, languageTag, count), nil
}

// Preview renders the welcome message for the player's current count
// without incrementing it.
func (t *Tracker) Preview(ctx context.Context, playerID, languageTag string) (Welcome, error) {
	count, err := t.store.Count(ctx, playerID)
	if err != nil {
		return Welcome{}, err
	}

	return t.render(playerID, languageTag, count), nil
}

func (t *Tracker) render(playerID, languageTag string, count int64) Welcome {
	text, category, err := t.translator.TranslateCount(languageTag, t.keyPrefix, int(count))

	welcome := Welcome{
		PlayerID: playerID,
		Count:    count,
		Category: category,
		Key:      t.keyPrefix + "." + string(category),
		Text:     text,
	}

	if errors.Is(err, ErrMissingTranslation) {
		welcome.Missing = true
		welcome.Text = welcome.Key
	}

	return welcome
}
