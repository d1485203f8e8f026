package wheel

import (
	"errors"
	"math/rand"
	"testing"
)

func TestWinnerIndex(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		previous float64
		spins    int
		extra    int
		want     int
	}{
		{
			// 1800 total, normalized 0, pointer at 90, 90 per slice -> index 1
			name: "four members five clean spins",
			n:    4, previous: 0, spins: 5, extra: 0,
			want: 1,
		},
		{
			// 2205 total, normalized 45, pointer at 45, 120 per slice -> index 0
			name: "three members with extra angle",
			n:    3, previous: 0, spins: 6, extra: 45,
			want: 0,
		},
		{
			name: "single member always wins",
			n:    1, previous: 0, spins: 9, extra: 123,
			want: 0,
		},
		{
			name: "accumulated previous rotation shifts the result",
			n:    4, previous: 45, spins: 5, extra: 0,
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := TotalRotation(tt.previous, tt.spins, tt.extra)
			got, err := WinnerIndex(tt.n, total)
			if err != nil {
				t.Fatalf("WinnerIndex() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("WinnerIndex(%d, %v) = %d, want %d", tt.n, total, got, tt.want)
			}
		})
	}
}

func TestTotalRotation(t *testing.T) {
	if got := TotalRotation(0, 5, 0); got != 1800 {
		t.Errorf("TotalRotation(0,5,0) = %v, want 1800", got)
	}
	if got := TotalRotation(0, 6, 45); got != 2205 {
		t.Errorf("TotalRotation(0,6,45) = %v, want 2205", got)
	}
	if got := TotalRotation(1800, 5, 90); got != 3690 {
		t.Errorf("TotalRotation(1800,5,90) = %v, want 3690", got)
	}
}

func TestWinnerIndexEmptyWheel(t *testing.T) {
	if _, err := WinnerIndex(0, 1800); !errors.Is(err, ErrNoMembers) {
		t.Errorf("WinnerIndex(0, ...) error = %v, want ErrNoMembers", err)
	}
	if _, err := WinnerIndex(-3, 1800); !errors.Is(err, ErrNoMembers) {
		t.Errorf("WinnerIndex(-3, ...) error = %v, want ErrNoMembers", err)
	}
}

func TestWinnerIndexDeterministic(t *testing.T) {
	total := TotalRotation(0, 8, 217)
	first, err := WinnerIndex(5, total)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		got, err := WinnerIndex(5, total)
		if err != nil {
			t.Fatal(err)
		}
		if got != first {
			t.Fatalf("resolution is not deterministic: got %d then %d", first, got)
		}
	}
}

func TestWinnerIndexCoversAllSlices(t *testing.T) {
	// Sweeping the extra angle over a full circle must hit every member.
	const n = 6
	seen := make(map[int]bool)
	for extra := 0; extra < 360; extra++ {
		idx, err := WinnerIndex(n, TotalRotation(0, 5, extra))
		if err != nil {
			t.Fatal(err)
		}
		if idx < 0 || idx >= n {
			t.Fatalf("index %d out of range [0,%d)", idx, n)
		}
		seen[idx] = true
	}
	if len(seen) != n {
		t.Errorf("sweep hit %d of %d slices", len(seen), n)
	}
}

func TestDrawRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		spins, extra := Draw(rng)
		if spins < 5 || spins > 10 {
			t.Fatalf("spins = %d, want in [5,10]", spins)
		}
		if extra < 0 || extra >= 360 {
			t.Fatalf("extraAngle = %d, want in [0,360)", extra)
		}
	}
}
