// Package storage persists the five collections. The Store keeps every
// collection in memory and writes the touched slot in full after each
// mutation. Reads and writes never surface errors: an absent, corrupt,
// or unwritable slot degrades to the slot's default (or to the live
// in-memory value), because every collection here is re-derivable from
// an empty default if storage is lost entirely.
package storage

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/julianstephens/stillday/internal/models"
)

type Store struct {
	medium Medium
	log    zerolog.Logger

	plans        []models.Plan
	cards        []models.Card
	habits       []models.Habit
	achievements []models.Achievement
	onboarded    bool
}

func New(medium Medium, log zerolog.Logger) *Store {
	return &Store{medium: medium, log: log}
}

// Load hydrates all five slots. Each slot falls back to its default
// independently, so one bad value never affects the others.
func (s *Store) Load() {
	s.plans = loadSlot(s, SlotPlans, []models.Plan{})
	s.cards = loadSlot(s, SlotBoardCards, []models.Card{})
	s.habits = loadSlot(s, SlotHabits, []models.Habit{})
	s.achievements = loadSlot(s, SlotAchievements, []models.Achievement{})
	s.onboarded = loadSlot(s, SlotOnboarded, false)
}

func (s *Store) Close() error {
	return s.medium.Close()
}

func loadSlot[T any](s *Store, key string, def T) T {
	raw, ok := s.medium.Get(key)
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		s.log.Warn().Err(err).Str("slot", key).Msg("malformed slot, using default")
		return def
	}
	return v
}

// saveSlot serializes the in-memory value for a slot. A write failure is
// logged and swallowed; the in-memory value stays authoritative for the
// rest of the process lifetime.
func (s *Store) saveSlot(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Error().Err(err).Str("slot", key).Msg("failed to serialize slot")
		return
	}
	if err := s.medium.Set(key, string(data)); err != nil {
		s.log.Warn().Err(err).Str("slot", key).Msg("failed to persist slot, keeping in-memory value")
	}
}

func (s *Store) Plans() []models.Plan { return s.plans }

func (s *Store) SetPlans(plans []models.Plan) {
	s.plans = plans
	s.saveSlot(SlotPlans, plans)
}

func (s *Store) Cards() []models.Card { return s.cards }

func (s *Store) SetCards(cards []models.Card) {
	s.cards = cards
	s.saveSlot(SlotBoardCards, cards)
}

func (s *Store) Habits() []models.Habit { return s.habits }

func (s *Store) SetHabits(habits []models.Habit) {
	s.habits = habits
	s.saveSlot(SlotHabits, habits)
}

func (s *Store) Achievements() []models.Achievement { return s.achievements }

func (s *Store) SetAchievements(achievements []models.Achievement) {
	s.achievements = achievements
	s.saveSlot(SlotAchievements, achievements)
}

func (s *Store) Onboarded() bool { return s.onboarded }

func (s *Store) SetOnboarded(onboarded bool) {
	s.onboarded = onboarded
	s.saveSlot(SlotOnboarded, onboarded)
}
