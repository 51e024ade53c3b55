package game

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/snek/systems"
)

func pressedDirection(a *Autopilot) (systems.Key, bool) {
	for _, k := range steering {
		if a.JustPressed(k) {
			return k, true
		}
	}
	return 0, false
}

func TestAutopilotTurnsOnFirstPoll(t *testing.T) {
	a := NewAutopilot(rand.New(rand.NewSource(1)), 0.25, 1.0, 0)
	a.Poll()

	if _, ok := pressedDirection(a); !ok {
		t.Error("no direction pressed on first poll")
	}
}

func TestAutopilotInterval(t *testing.T) {
	// dt and interval are exact in binary, so a turn lands every fourth poll
	a := NewAutopilot(rand.New(rand.NewSource(7)), 0.25, 1.0, 0)

	for i := 0; i < 12; i++ {
		a.Poll()
		_, pressed := pressedDirection(a)
		want := i%4 == 0
		if pressed != want {
			t.Errorf("poll %d: pressed = %v, want %v", i, pressed, want)
		}
	}
}

func TestAutopilotNeverReverses(t *testing.T) {
	a := NewAutopilot(rand.New(rand.NewSource(42)), 1, 1, 0)

	var prev systems.Key
	havePrev := false
	for i := 0; i < 1000; i++ {
		a.Poll()
		k, ok := pressedDirection(a)
		if !ok {
			t.Fatalf("poll %d: no press with dt equal to interval", i)
		}
		if havePrev && k == opposite[prev] {
			t.Fatalf("poll %d: reversed from %d to %d", i, prev, k)
		}
		prev, havePrev = k, true
	}
}

func TestAutopilotGrowChance(t *testing.T) {
	tests := []struct {
		name   string
		chance float64
		want   bool
	}{
		{"never", 0, false},
		{"always", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAutopilot(rand.New(rand.NewSource(3)), 1, 1, tt.chance)
			for i := 0; i < 20; i++ {
				a.Poll()
				if got := a.JustPressed(systems.KeyGrow); got != tt.want {
					t.Fatalf("poll %d: grow pressed = %v, want %v", i, got, tt.want)
				}
			}
		})
	}
}

func TestAutopilotPressesClearBetweenPolls(t *testing.T) {
	a := NewAutopilot(rand.New(rand.NewSource(9)), 0.25, 1.0, 1)
	a.Poll()
	a.Poll()

	if _, ok := pressedDirection(a); ok {
		t.Error("direction still pressed on the following poll")
	}
	if a.JustPressed(systems.KeyGrow) {
		t.Error("grow still pressed on the following poll")
	}
	if a.FrameTime() != 0.25 {
		t.Errorf("FrameTime() = %v, want 0.25", a.FrameTime())
	}
}
