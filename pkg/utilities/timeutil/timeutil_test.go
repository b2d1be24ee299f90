package timeutil_test

import (
	"testing"
	"time"

	"identity-market/pkg/utilities/timeutil"
)

func TestFromUnix(t *testing.T) {
	ts := timeutil.FromUnix(1700000000)
	if ts.T != 1700000000 {
		t.Errorf("Expected 1700000000, got %d", ts.T)
	}
}

func TestNowUTC(t *testing.T) {
	before := time.Now().UTC().Unix()
	ts := timeutil.NowUTC()
	after := time.Now().UTC().Unix()

	if ts.T < before || ts.T > after {
		t.Errorf("Expected NowUTC between %d and %d, got %d", before, after, ts.T)
	}
}

func TestAfterBefore(t *testing.T) {
	early := timeutil.FromUnix(1000)
	late := timeutil.FromUnix(2000)

	if !late.After(early) {
		t.Error("Expected late.After(early) to be true")
	}
	if late.Before(early) {
		t.Error("Expected late.Before(early) to be false")
	}
	if !early.Before(late) {
		t.Error("Expected early.Before(late) to be true")
	}
	if early.After(early) {
		t.Error("Expected a timestamp not to be after itself")
	}
}

func TestAddSeconds(t *testing.T) {
	ts := timeutil.FromUnix(1000)

	if got := ts.AddSeconds(500); got.T != 1500 {
		t.Errorf("Expected 1500, got %d", got.T)
	}
	if got := ts.AddSeconds(-500); got.T != 500 {
		t.Errorf("Expected 500, got %d", got.T)
	}
}

func TestSecondsSince(t *testing.T) {
	early := timeutil.FromUnix(1000)
	late := timeutil.FromUnix(1800)

	if got := late.SecondsSince(early); got != 800 {
		t.Errorf("Expected 800, got %d", got)
	}
	if got := early.SecondsSince(late); got != -800 {
		t.Errorf("Expected -800 for a future timestamp, got %d", got)
	}
}
