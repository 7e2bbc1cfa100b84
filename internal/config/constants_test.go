package config

import "testing"

func TestConstants(t *testing.T) {
	for name, v := range map[string]int{
		"DefaultFocusMinutes":      DefaultFocusMinutes,
		"DefaultShortBreakMinutes": DefaultShortBreakMinutes,
		"DefaultLongBreakMinutes":  DefaultLongBreakMinutes,
	} {
		if v < MinMinutes {
			t.Fatalf("%s must be at least %d", name, MinMinutes)
		}
	}
	if DefaultFocusMinutes > MaxFocusMinutes {
		t.Fatalf("DefaultFocusMinutes exceeds MaxFocusMinutes")
	}
	if DefaultShortBreakMinutes > MaxBreakMinutes || DefaultLongBreakMinutes > MaxBreakMinutes {
		t.Fatalf("break defaults exceed MaxBreakMinutes")
	}
	if LongBreakEvery <= 0 {
		t.Fatalf("LongBreakEvery must be positive")
	}
	if FrameInterval <= 0 || FrameInterval >= TickLength {
		t.Fatalf("FrameInterval must be positive and shorter than a tick")
	}
	if AutoAdvanceDelay <= 0 {
		t.Fatalf("AutoAdvanceDelay must be positive")
	}
	if AppName == "" || DBFileName == "" || SettingsFileName == "" {
		t.Fatalf("file names should not be empty")
	}
}
