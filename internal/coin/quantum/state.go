package quantum

import (
	"math"
	"math/rand"
)

// StateVector holds the full amplitude vector of a simulated quantum
// register. Basis index i encodes qubit q as bit (i>>q)&1, so qubit 0 is the
// least significant bit of the index.
type StateVector struct {
	amps   []complex128
	qubits int
}

// NewStateVector creates a register of the given width initialized to |0...0⟩
func NewStateVector(qubits int) *StateVector {
	amps := make([]complex128, 1<<qubits)
	amps[0] = 1
	return &StateVector{amps: amps, qubits: qubits}
}

// Qubits returns the register width
func (s *StateVector) Qubits() int {
	return s.qubits
}

// Amplitudes returns a copy of the amplitude vector
func (s *StateVector) Amplitudes() []complex128 {
	amps := make([]complex128, len(s.amps))
	copy(amps, s.amps)
	return amps
}

// Norm returns the sum of squared amplitude magnitudes. It is 1 after every
// unitary and every measurement, up to floating point error.
func (s *StateVector) Norm() float64 {
	total := 0.0
	for _, a := range s.amps {
		total += real(a)*real(a) + imag(a)*imag(a)
	}
	return total
}

// ApplyH applies a Hadamard gate to qubit q
func (s *StateVector) ApplyH(q int) {
	f := complex(1/math.Sqrt2, 0)
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := s.amps[i], s.amps[j]
			s.amps[i] = f * (a0 + a1)
			s.amps[j] = f * (a0 - a1)
		}
	}
}

// ApplyX applies a Pauli-X (NOT) gate to qubit q
func (s *StateVector) ApplyX(q int) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// ApplyCX applies a controlled-NOT gate with the given control and target
func (s *StateVector) ApplyCX(control, target int) {
	cBit := 1 << control
	tBit := 1 << target
	for i := range s.amps {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// ApplyCZ applies a controlled-Z gate with the given control and target
func (s *StateVector) ApplyCZ(control, target int) {
	cBit := 1 << control
	tBit := 1 << target
	for i := range s.amps {
		if i&cBit != 0 && i&tBit != 0 {
			s.amps[i] *= -1
		}
	}
}

// Probability returns the probability of measuring qubit q as 1
func (s *StateVector) Probability(q int) float64 {
	bit := 1 << q
	p1 := 0.0
	for i, a := range s.amps {
		if i&bit != 0 {
			p1 += real(a)*real(a) + imag(a)*imag(a)
		}
	}
	return p1
}

// Measure measures qubit q, collapsing the register onto the observed
// outcome and renormalizing the surviving amplitudes.
func (s *StateVector) Measure(q int, rng *rand.Rand) int {
	outcome := 0
	if rng.Float64() < s.Probability(q) {
		outcome = 1
	}
	s.collapse(q, outcome)
	return outcome
}

func (s *StateVector) collapse(q, outcome int) {
	bit := 1 << q
	keep := 0
	if outcome == 1 {
		keep = bit
	}

	norm := 0.0
	for i, a := range s.amps {
		if i&bit == keep {
			norm += real(a)*real(a) + imag(a)*imag(a)
		}
	}

	scale := complex(1/math.Sqrt(norm), 0)
	for i := range s.amps {
		if i&bit == keep {
			s.amps[i] *= scale
		} else {
			s.amps[i] = 0
		}
	}
}
