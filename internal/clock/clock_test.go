package clock

import (
	"testing"
	"time"
)

func TestKey_SameDaySameKey(t *testing.T) {
	morning := time.Date(2024, 3, 2, 0, 0, 1, 0, time.Local)
	night := time.Date(2024, 3, 2, 23, 59, 59, 0, time.Local)

	if Key(morning) != Key(night) {
		t.Errorf("expected same key for instants on the same day, got %q and %q", Key(morning), Key(night))
	}
	if Key(morning) != "2024-03-02" {
		t.Errorf("expected 2024-03-02, got %q", Key(morning))
	}
}

func TestKey_OrderingIsLexicographic(t *testing.T) {
	earlier := time.Date(2024, 9, 30, 12, 0, 0, 0, time.Local)
	later := time.Date(2024, 10, 1, 12, 0, 0, 0, time.Local)

	if !(Key(earlier) < Key(later)) {
		t.Errorf("expected %q < %q", Key(earlier), Key(later))
	}
}

func TestToday_MatchesNow(t *testing.T) {
	if Today() != Key(time.Now()) {
		t.Error("Today should key the current instant")
	}
}
