package quantum

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/rs/zerolog"

	"github.com/qcoinlab/go-qcc/internal/logger"
)

// DefaultMaxQubits bounds the simulated register width. Every shot holds
// 2^qubits complex amplitudes in memory.
const DefaultMaxQubits = 24

// ErrRegisterTooWide is returned when a circuit needs more qubits than the
// backend provides.
var ErrRegisterTooWide = errors.New("circuit exceeds backend qubit budget")

// Backend defines the interface for quantum execution targets. The algorithm
// layer only requires gate application, classically conditioned instructions
// and single-shot measurement readback, so hardware clients can satisfy this
// interface as easily as the local simulator.
type Backend interface {
	// Name returns the name of the backend
	Name() string

	// MaxQubits returns the widest register the backend accepts
	MaxQubits() int

	// Execute runs the circuit for the given number of shots. The seed makes
	// simulated runs reproducible; hardware backends may ignore it.
	Execute(c *Circuit, shots int, seed int64) (*Result, error)
}

// Readout is the classical register contents left behind by one shot.
type Readout struct {
	bits *bitset.BitSet
	n    uint
}

// NewReadout wraps a classical register of width n. Backend implementations
// outside this package use it to report shot outcomes.
func NewReadout(bits *bitset.BitSet, n int) Readout {
	return Readout{bits: bits, n: uint(n)}
}

// Bit returns classical bit i as 0 or 1
func (r Readout) Bit(i int) int {
	if r.bits.Test(uint(i)) {
		return 1
	}
	return 0
}

// Len returns the width of the classical register
func (r Readout) Len() int {
	return int(r.n)
}

// Ones returns the number of set bits
func (r Readout) Ones() int {
	return int(r.bits.Count())
}

// String renders the register with bit n-1 leftmost, the convention used by
// hardware counts dictionaries.
func (r Readout) String() string {
	var b strings.Builder
	for i := int(r.n) - 1; i >= 0; i-- {
		if r.bits.Test(uint(i)) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Result aggregates the shots of one execution.
type Result struct {
	Backend  string
	Shots    int
	Counts   map[string]int
	Readouts []Readout
}

// Simulator is the local state-vector backend.
type Simulator struct {
	maxQubits int
	log       zerolog.Logger
}

// NewSimulator creates a state-vector simulator with the default qubit budget
func NewSimulator() *Simulator {
	return &Simulator{
		maxQubits: DefaultMaxQubits,
		log:       logger.Logger().With().Str("backend", "statevector").Logger(),
	}
}

// SetMaxQubits overrides the qubit budget
func (s *Simulator) SetMaxQubits(n int) {
	if n > 0 {
		s.maxQubits = n
	}
}

// Name returns the name of the simulator backend
func (s *Simulator) Name() string {
	return "statevector"
}

// MaxQubits returns the widest register the simulator accepts
func (s *Simulator) MaxQubits() int {
	return s.maxQubits
}

// Execute runs the circuit shots times, each shot on a fresh register, and
// aggregates the readouts into a counts histogram.
func (s *Simulator) Execute(c *Circuit, shots int, seed int64) (*Result, error) {
	if c == nil {
		return nil, fmt.Errorf("nil circuit")
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid circuit: %w", err)
	}
	if c.Qubits > s.maxQubits {
		return nil, fmt.Errorf("%w: circuit needs %d qubits, budget is %d", ErrRegisterTooWide, c.Qubits, s.maxQubits)
	}
	if shots < 1 {
		return nil, fmt.Errorf("shot count must be positive, got %d", shots)
	}

	rng := rand.New(rand.NewSource(seed))
	result := &Result{
		Backend:  s.Name(),
		Shots:    shots,
		Counts:   make(map[string]int),
		Readouts: make([]Readout, 0, shots),
	}

	for shot := 0; shot < shots; shot++ {
		readout := s.runShot(c, rng)
		result.Readouts = append(result.Readouts, readout)
		result.Counts[readout.String()]++
	}

	s.log.Debug().
		Int("qubits", c.Qubits).
		Int("shots", shots).
		Int("patterns", len(result.Counts)).
		Msg("execution finished")

	return result, nil
}

// runShot plays the circuit once. Classical conditions are resolved against
// the bits measured so far in this shot.
func (s *Simulator) runShot(c *Circuit, rng *rand.Rand) Readout {
	sv := NewStateVector(c.Qubits)
	creg := bitset.New(uint(c.Clbits))

	for _, in := range c.Instructions {
		if in.Conditioned() {
			held := 0
			if creg.Test(uint(in.CondBit)) {
				held = 1
			}
			if held != in.CondVal {
				continue
			}
		}

		switch in.Op {
		case OpH:
			sv.ApplyH(in.Target)
		case OpX:
			sv.ApplyX(in.Target)
		case OpCX:
			sv.ApplyCX(in.Control, in.Target)
		case OpCZ:
			sv.ApplyCZ(in.Control, in.Target)
		case OpMeasure:
			creg.SetTo(uint(in.Clbit), sv.Measure(in.Target, rng) == 1)
		}
	}

	return NewReadout(creg, c.Clbits)
}
