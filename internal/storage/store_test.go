package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/julianstephens/stillday/internal/models"
	"github.com/julianstephens/stillday/internal/storage"
)

func newFileStore(t *testing.T) (*storage.Store, string) {
	t.Helper()

	dir := t.TempDir()
	store := storage.New(storage.NewFileMedium(dir), zerolog.Nop())
	store.Load()

	return store, dir
}

func TestStore_DefaultsWhenEmpty(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	store, _ := newFileStore(t)

	assert.Empty(store.Plans())
	assert.Empty(store.Cards())
	assert.Empty(store.Habits())
	assert.Empty(store.Achievements())
	assert.False(store.Onboarded())
}

func TestStore_RoundTrip(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	store, dir := newFileStore(t)

	plans := []models.Plan{{ID: "p1", Text: "Walk", Time: "15:30", DateKey: "2024-03-02"}}
	cards := []models.Card{{ID: "c1", Title: "Outline concept", Status: models.CardStatusTodo}}
	habits := []models.Habit{{ID: "h1", Name: "Hydrate", Checks: map[string]bool{"2024-01-01": true}, Streak: 1}}

	store.SetPlans(plans)
	store.SetCards(cards)
	store.SetHabits(habits)
	store.SetOnboarded(true)

	// Reopen against the same directory, the way a process restart would.
	reopened := storage.New(storage.NewFileMedium(dir), zerolog.Nop())
	reopened.Load()

	assert.Equal(plans, reopened.Plans())
	assert.Equal(cards, reopened.Cards())
	assert.Equal(habits, reopened.Habits())
	assert.True(reopened.Onboarded())
}

func TestStore_CorruptSlotFallsBackAlone(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	store, dir := newFileStore(t)

	store.SetHabits([]models.Habit{{ID: "h1", Name: "Hydrate", Checks: map[string]bool{}}})

	// Corrupt the plans slot only.
	err := os.WriteFile(filepath.Join(dir, "plans.json"), []byte("{not json"), 0600)
	assert.Nil(err)

	reopened := storage.New(storage.NewFileMedium(dir), zerolog.Nop())
	reopened.Load()

	assert.Empty(reopened.Plans())
	assert.Len(reopened.Habits(), 1)
}

type brokenMedium struct{}

func (brokenMedium) Get(string) (string, bool) { return "", false }
func (brokenMedium) Set(string, string) error  { return os.ErrPermission }
func (brokenMedium) Close() error              { return nil }

func TestStore_WriteFailureKeepsInMemoryValue(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	store := storage.New(brokenMedium{}, zerolog.Nop())
	store.Load()

	store.SetPlans([]models.Plan{{ID: "p1", Text: "Walk", DateKey: "2024-03-02"}})

	// The write was rejected but the live value stays authoritative.
	assert.Len(store.Plans(), 1)
}

func TestSQLiteMedium_RoundTrip(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "stillday.db")

	medium, err := storage.NewSQLiteMedium(path)
	assert.Nil(err)

	store := storage.New(medium, zerolog.Nop())
	store.Load()
	store.SetCards([]models.Card{{ID: "c1", Title: "Review notes", Status: models.CardStatusDone}})
	store.SetOnboarded(true)
	assert.Nil(store.Close())

	medium2, err := storage.NewSQLiteMedium(path)
	assert.Nil(err)

	reopened := storage.New(medium2, zerolog.Nop())
	reopened.Load()
	defer reopened.Close()

	assert.Len(reopened.Cards(), 1)
	assert.Equal(models.CardStatusDone, reopened.Cards()[0].Status)
	assert.True(reopened.Onboarded())
}

func TestSQLiteMedium_AbsentKey(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	medium, err := storage.NewSQLiteMedium(filepath.Join(t.TempDir(), "stillday.db"))
	assert.Nil(err)
	defer medium.Close()

	_, ok := medium.Get("plans")
	assert.False(ok)
}

func TestFileMedium_OverwriteReplacesValue(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	medium := storage.NewFileMedium(t.TempDir())

	assert.Nil(medium.Set("habits", `[]`))
	assert.Nil(medium.Set("habits", `[{"id":"h1"}]`))

	value, ok := medium.Get("habits")
	assert.True(ok)
	assert.Equal(`[{"id":"h1"}]`, value)
}
