package tinsel

import (
	"strings"
	"testing"
)

func TestHUDText(t *testing.T) {
	tests := []struct {
		snap  Snapshot
		label string
		want  string
	}{
		{Snapshot{State: StateIntro}, "", "Intro photos: 0"},
		{Snapshot{State: StateCountdown, CountdownIndex: 2}, "3", "Countdown 3 photos: 0"},
		{Snapshot{State: StateInteractiveTree, Mode: ModeScattered}, "", "InteractiveTree/Scattered photos: 0"},
	}
	for _, tt := range tests {
		got := hudText(tt.snap, tt.label, 0, 60, 60)
		if !strings.Contains(got, tt.want) {
			t.Errorf("hudText(%v) = %q, want it to contain %q", tt.snap.State, got, tt.want)
		}
	}
}

func TestHUDTextRates(t *testing.T) {
	got := hudText(Snapshot{}, "", 3, 59.94, 60)
	if !strings.HasPrefix(got, "FPS: 59.9 TPS: 60.0") {
		t.Errorf("hudText = %q", got)
	}
	if !strings.Contains(got, "photos: 3") {
		t.Errorf("hudText = %q, want photo count", got)
	}
}
