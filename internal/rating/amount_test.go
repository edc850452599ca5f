package rating

import (
	"errors"
	"math"
	"testing"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      any
		want    float64
		wantErr bool
	}{
		{"float64", 14.04, 14.04, false},
		{"float32", float32(2.5), 2.5, false},
		{"int", 17, 17, false},
		{"int32", int32(-5), -5, false},
		{"int64", int64(270), 270, false},
		{"uint", uint(9), 9, false},
		{"uint64", uint64(40), 40, false},
		{"numeric string", "11.3", 11.3, false},
		{"padded string", "  7.5 ", 7.5, false},
		{"scientific string", "1e3", 1000, false},
		{"zero", 0.0, 0, false},
		{"non-numeric string", "eleven", 0, true},
		{"empty string", "", 0, true},
		{"nil", nil, 0, true},
		{"bool", true, 0, true},
		{"NaN", math.NaN(), 0, true},
		{"positive infinity", math.Inf(1), 0, true},
		{"infinity string", "Inf", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Fatalf("ParseAmount(%v) error = %v, want ErrInvalidAmount", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%v): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseAmount(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
