package core

import "testing"

func TestInboxDrainOrder(t *testing.T) {
	var box Inbox
	box.Post(DirectionIntent(DirLeft))
	box.Post(PresetIntent("high"))
	box.Post(DirectionIntent(DirNone))

	if box.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", box.Len())
	}

	got := box.Drain()
	if len(got) != 3 {
		t.Fatalf("Drain() returned %d intents, expected 3", len(got))
	}
	if got[0].Dir != DirLeft || got[1].Preset != "high" || got[2].Dir != DirNone {
		t.Errorf("Drain() order wrong: %+v", got)
	}
	if box.Len() != 0 || box.Drain() != nil {
		t.Error("inbox should be empty after Drain")
	}
}

func TestDirectionSign(t *testing.T) {
	tests := []struct {
		dir  Direction
		want float64
	}{
		{DirLeft, -1},
		{DirNone, 0},
		{DirRight, 1},
	}
	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := tc.dir.Sign(); got != tc.want {
				t.Errorf("Sign() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestDirectionKeys(t *testing.T) {
	type step struct {
		press       bool
		dir         Direction
		want        Direction
		wantChanged bool
	}
	tests := []struct {
		name  string
		steps []step
	}{
		{"press and release", []step{
			{true, DirLeft, DirLeft, true},
			{false, DirLeft, DirNone, true},
		}},
		{"last pressed wins", []step{
			{true, DirLeft, DirLeft, true},
			{true, DirRight, DirRight, true},
			{false, DirRight, DirLeft, true},
			{false, DirLeft, DirNone, true},
		}},
		{"releasing the other key keeps direction", []step{
			{true, DirLeft, DirLeft, true},
			{true, DirRight, DirRight, true},
			{false, DirLeft, DirRight, false},
		}},
		{"repeat press is not a change", []step{
			{true, DirRight, DirRight, true},
			{true, DirRight, DirRight, false},
		}},
		{"none is ignored", []step{
			{true, DirNone, DirNone, false},
			{false, DirNone, DirNone, false},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var k DirectionKeys
			for i, s := range tc.steps {
				var got Direction
				var changed bool
				if s.press {
					got, changed = k.Press(s.dir)
				} else {
					got, changed = k.Release(s.dir)
				}
				if got != s.want || changed != s.wantChanged {
					t.Fatalf("step %d: got (%v, %v), expected (%v, %v)", i, got, changed, s.want, s.wantChanged)
				}
			}
			if k.Current() != tc.steps[len(tc.steps)-1].want {
				t.Errorf("Current() = %v", k.Current())
			}
		})
	}
}
