package quantum

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

// TestNewStateVector tests the initial state
func TestNewStateVector(t *testing.T) {
	sv := NewStateVector(3)

	require.Equal(t, 3, sv.Qubits())
	amps := sv.Amplitudes()
	require.Len(t, amps, 8)
	assert.Equal(t, complex128(1), amps[0])
	for i := 1; i < 8; i++ {
		assert.Equal(t, complex128(0), amps[i])
	}
}

// TestHadamard tests superposition and involution
func TestHadamard(t *testing.T) {
	t.Run("creates equal superposition", func(t *testing.T) {
		sv := NewStateVector(1)
		sv.ApplyH(0)

		assert.InDelta(t, 0.5, sv.Probability(0), eps)
		assert.InDelta(t, 1.0, sv.Norm(), eps)
	})

	t.Run("is its own inverse", func(t *testing.T) {
		sv := NewStateVector(2)
		sv.ApplyX(1)
		sv.ApplyH(1)
		sv.ApplyH(1)

		amps := sv.Amplitudes()
		assert.InDelta(t, 1.0, real(amps[2]), eps) // back to |10⟩
		assert.InDelta(t, 1.0, sv.Norm(), eps)
	})
}

// TestPauliX tests the bit flip
func TestPauliX(t *testing.T) {
	sv := NewStateVector(2)
	sv.ApplyX(0)

	amps := sv.Amplitudes()
	assert.Equal(t, complex128(1), amps[1])
	assert.InDelta(t, 1.0, sv.Probability(0), eps)
	assert.InDelta(t, 0.0, sv.Probability(1), eps)
}

// TestCNOT tests the controlled flip on basis states and entangled states
func TestCNOT(t *testing.T) {
	t.Run("control off leaves target", func(t *testing.T) {
		sv := NewStateVector(2)
		sv.ApplyCX(0, 1)
		assert.InDelta(t, 0.0, sv.Probability(1), eps)
	})

	t.Run("control on flips target", func(t *testing.T) {
		sv := NewStateVector(2)
		sv.ApplyX(0)
		sv.ApplyCX(0, 1)
		assert.InDelta(t, 1.0, sv.Probability(1), eps)
	})

	t.Run("builds a Bell pair", func(t *testing.T) {
		sv := NewStateVector(2)
		sv.ApplyH(0)
		sv.ApplyCX(0, 1)

		amps := sv.Amplitudes()
		assert.InDelta(t, 1/math.Sqrt2, real(amps[0]), eps)
		assert.InDelta(t, 1/math.Sqrt2, real(amps[3]), eps)
		assert.InDelta(t, 0.0, real(amps[1]), eps)
		assert.InDelta(t, 0.0, real(amps[2]), eps)
	})
}

// TestCZ tests the conditional phase flip
func TestCZ(t *testing.T) {
	sv := NewStateVector(2)
	sv.ApplyX(0)
	sv.ApplyX(1)
	sv.ApplyCZ(0, 1)

	amps := sv.Amplitudes()
	assert.InDelta(t, -1.0, real(amps[3]), eps)
	assert.InDelta(t, 1.0, sv.Norm(), eps)
}

// TestNormInvariant verifies unit norm through a longer gate sequence
func TestNormInvariant(t *testing.T) {
	sv := NewStateVector(4)
	for q := 0; q < 4; q++ {
		sv.ApplyH(q)
	}
	sv.ApplyCX(0, 3)
	sv.ApplyCZ(1, 2)
	sv.ApplyX(2)
	sv.ApplyH(1)

	assert.InDelta(t, 1.0, sv.Norm(), eps)
}

// TestMeasure tests collapse behavior
func TestMeasure(t *testing.T) {
	t.Run("deterministic on basis states", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))

		sv := NewStateVector(1)
		assert.Equal(t, 0, sv.Measure(0, rng))

		sv = NewStateVector(1)
		sv.ApplyX(0)
		assert.Equal(t, 1, sv.Measure(0, rng))
	})

	t.Run("collapses entangled partner", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 50; i++ {
			sv := NewStateVector(2)
			sv.ApplyH(0)
			sv.ApplyCX(0, 1)

			first := sv.Measure(0, rng)
			second := sv.Measure(1, rng)
			require.Equal(t, first, second, "Bell pair measurements must agree")
			assert.InDelta(t, 1.0, sv.Norm(), eps)
		}
	})

	t.Run("superposition measures 0 and 1 evenly", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		trials := 10000
		ones := 0
		for i := 0; i < trials; i++ {
			sv := NewStateVector(1)
			sv.ApplyH(0)
			ones += sv.Measure(0, rng)
		}

		fraction := float64(ones) / float64(trials)
		assert.InDelta(t, 0.5, fraction, 0.03)
	})
}
