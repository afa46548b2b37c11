package ui

import (
	"testing"
	"time"

	"the-snake/game/types"
)

type fakeTime struct {
	now   time.Time
	slept []time.Duration
}

func (f *fakeTime) clock() *Clock {
	return &Clock{
		now: func() time.Time { return f.now },
		sleep: func(d time.Duration) {
			f.slept = append(f.slept, d)
			f.now = f.now.Add(d)
		},
	}
}

func TestClockFirstTickDoesNotWait(t *testing.T) {
	ft := &fakeTime{now: time.Unix(1000, 0)}
	c := ft.clock()

	if got := c.Tick(10); got != 0 {
		t.Errorf("first tick returned %v", got)
	}
	if len(ft.slept) != 0 {
		t.Errorf("first tick slept %v", ft.slept)
	}
}

func TestClockSleepsRemainderOfFrame(t *testing.T) {
	ft := &fakeTime{now: time.Unix(1000, 0)}
	c := ft.clock()
	c.Tick(10)

	ft.now = ft.now.Add(30 * time.Millisecond)
	got := c.Tick(10)

	if len(ft.slept) != 1 || ft.slept[0] != 70*time.Millisecond {
		t.Fatalf("expected one 70ms sleep, got %v", ft.slept)
	}
	if got != 100*time.Millisecond {
		t.Errorf("expected 100ms frame, got %v", got)
	}
}

func TestClockSlowFrameDoesNotSleep(t *testing.T) {
	ft := &fakeTime{now: time.Unix(1000, 0)}
	c := ft.clock()
	c.Tick(10)

	ft.now = ft.now.Add(250 * time.Millisecond)
	got := c.Tick(10)

	if len(ft.slept) != 0 {
		t.Errorf("slow frame slept %v", ft.slept)
	}
	if got != 250*time.Millisecond {
		t.Errorf("expected 250ms frame, got %v", got)
	}
}

func TestEventDirection(t *testing.T) {
	tests := []struct {
		ev   Event
		want types.Direction
		ok   bool
	}{
		{KeyUp, types.Up, true},
		{KeyDown, types.Down, true},
		{KeyLeft, types.Left, true},
		{KeyRight, types.Right, true},
		{Quit, types.None, false},
	}

	for _, tt := range tests {
		got, ok := tt.ev.Direction()
		if got != tt.want || ok != tt.ok {
			t.Errorf("%v.Direction() = %v, %v; want %v, %v", tt.ev, got, ok, tt.want, tt.ok)
		}
	}
}
