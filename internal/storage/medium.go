package storage

// Slot keys for the five persisted slots. Each slot is serialized and
// stored independently, so a corrupt value under one key never affects
// its siblings.
const (
	SlotPlans        = "plans"
	SlotBoardCards   = "boardCards"
	SlotHabits       = "habits"
	SlotAchievements = "achievements"
	SlotOnboarded    = "onboarded"
)

// Medium is the persistence transport: string values addressed by slot
// key. Get reports absence rather than erroring; Set may fail and the
// caller decides what to do about it (the Store swallows the failure and
// keeps its in-memory value authoritative).
type Medium interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Close() error
}
