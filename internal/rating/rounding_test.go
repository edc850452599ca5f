package rating

import "testing"

func TestRoundingKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mode Rounding
		v    float64
		want int64
	}{
		{"tenth plain", RoundTenth, 3.7, 37},
		{"tenth display noise", RoundTenth, 14.04, 140},
		{"tenth float artifact", RoundTenth, 0.1 + 0.2, 3},
		{"tenth half away from zero", RoundTenth, 0.25, 3},
		{"tenth negative half away from zero", RoundTenth, -0.25, -3},
		{"whole plain", RoundWhole, 17, 17},
		{"whole rounds down", RoundWhole, 2.4, 2},
		{"whole half away from zero", RoundWhole, 2.5, 3},
		{"whole negative half away from zero", RoundWhole, -2.5, -3},
		{"zero", RoundTenth, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.key(tt.v); got != tt.want {
				t.Errorf("%v.key(%v) = %d, want %d", tt.mode, tt.v, got, tt.want)
			}
		})
	}
}

func TestParseRounding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Rounding
		wantErr bool
	}{
		{"tenth", RoundTenth, false},
		{"whole", RoundWhole, false},
		{"Tenth", 0, true},
		{"integer", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRounding(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseRounding(%q) expected error, got %v", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRounding(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseRounding(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundingString(t *testing.T) {
	t.Parallel()

	if RoundTenth.String() != "tenth" || RoundWhole.String() != "whole" {
		t.Errorf("unexpected mode names: %q, %q", RoundTenth, RoundWhole)
	}
	if Rounding(9).String() != "unknown" {
		t.Errorf("Rounding(9) = %q, want unknown", Rounding(9))
	}

	// Имя из String должно парситься обратно в тот же режим.
	for _, mode := range []Rounding{RoundTenth, RoundWhole} {
		back, err := ParseRounding(mode.String())
		if err != nil || back != mode {
			t.Errorf("roundtrip %v: got %v, err %v", mode, back, err)
		}
	}
}
