// Package wheel maps a randomized wheel rotation to the member who
// hosts the next meeting. The two random draws are isolated in Draw;
// the resolution from angle to index is pure so results are exactly
// reproducible for a known rotation.
package wheel

import (
	"errors"
	"math"
	"math/rand"
)

var ErrNoMembers = errors.New("wheel: no active members to draw from")

const (
	minSpins    = 5
	maxSpins    = 10
	fullCircle  = 360.0
	pointerSkew = 90.0 // slice 0 starts at the top; the pointer sits at angle 0
)

// Draw picks the randomized part of a spin: the number of full turns
// (uniform in [5,10]) and an extra angle in whole degrees ([0,360)).
func Draw(rng *rand.Rand) (spins, extraAngle int) {
	spins = minSpins + rng.Intn(maxSpins-minSpins+1)
	extraAngle = int(rng.Float64() * fullCircle)
	return spins, extraAngle
}

// TotalRotation accumulates a spin on top of whatever rotation the
// wheel already had. A discarded result must restart from zero.
func TotalRotation(previous float64, spins, extraAngle int) float64 {
	return previous + float64(spins)*fullCircle + float64(extraAngle)
}

// WinnerIndex resolves the final rotation to a 0-based index into the
// ordered member list. n must be positive.
func WinnerIndex(n int, totalRotation float64) (int, error) {
	if n <= 0 {
		return 0, ErrNoMembers
	}
	normalized := math.Mod(totalRotation, fullCircle)
	if normalized < 0 {
		normalized += fullCircle
	}
	relative := math.Mod(pointerSkew-normalized, fullCircle)
	if relative < 0 {
		relative += fullCircle
	}
	anglePerMember := fullCircle / float64(n)
	return int(math.Floor(relative/anglePerMember)) % n, nil
}
