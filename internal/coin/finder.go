// Package coin implements the quantum counterfeit coin search: among N coins
// with at most one underweight coin, a single query to a quantum beam-balance
// oracle reveals the counterfeit's position.
package coin

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/qcoinlab/go-qcc/internal/coin/quantum"
	"github.com/qcoinlab/go-qcc/internal/logger"
	"github.com/qcoinlab/go-qcc/internal/metrics"
)

const (
	// MinCoins is the smallest supported coin count.
	MinCoins = 4

	// DefaultMaxPrepRetries bounds how often a trial retries the parity
	// preparation. Each attempt succeeds with probability 1/2, so the bound
	// is hit with probability 2^-32.
	DefaultMaxPrepRetries = 32
)

// Finder locates the single underweight coin among a fixed number of coins,
// spending one beam-balance oracle query per trial.
type Finder struct {
	backend        quantum.Backend
	coins          int
	maxPrepRetries int
	log            zerolog.Logger
}

// NewFinder creates a finder for the given coin count. Configuration problems
// are fatal and reported before any simulation work.
func NewFinder(backend quantum.Backend, coins int) (*Finder, error) {
	if backend == nil {
		return nil, ErrNoBackend
	}
	if coins < MinCoins {
		return nil, fmt.Errorf("%w: got %d, need at least %d", ErrInvalidCoinCount, coins, MinCoins)
	}
	if coins+1 > backend.MaxQubits() {
		return nil, fmt.Errorf("%w: %d coins need %d qubits, %s offers %d",
			ErrRegisterBudget, coins, coins+1, backend.Name(), backend.MaxQubits())
	}

	return &Finder{
		backend:        backend,
		coins:          coins,
		maxPrepRetries: DefaultMaxPrepRetries,
		log:            logger.Logger().With().Str("component", "finder").Int("coins", coins).Logger(),
	}, nil
}

// Coins returns the configured coin count
func (f *Finder) Coins() int {
	return f.coins
}

// MaxPrepRetries returns the preparation retry bound
func (f *Finder) MaxPrepRetries() int {
	return f.maxPrepRetries
}

// SetMaxPrepRetries overrides the preparation retry bound
func (f *Finder) SetMaxPrepRetries(n int) {
	if n > 0 {
		f.maxPrepRetries = n
	}
}

// Circuit builds the single-query circuit for the given hidden counterfeit
// index. Layout: qubits 0..N-1 are the query register, qubit N is the
// ancilla; classical bit i records qubit i.
//
// The circuit has three phases:
//  1. Hadamard on every query qubit, CNOT chain into the ancilla, ancilla
//     measurement. Classical bit N == 0 means the query register collapsed
//     onto the even-parity superposition.
//  2. Conditioned on bit N == 0: ancilla to |−⟩ and one CNOT from the
//     counterfeit qubit — the oracle query, kicking phase (−1)^(x_k).
//  3. Conditioned on bit N == 0: Hadamard on every query qubit, then measure
//     the query register.
func (f *Finder) Circuit(counterfeit int) (*quantum.Circuit, error) {
	if counterfeit < 0 || counterfeit >= f.coins {
		return nil, fmt.Errorf("%w: index %d with %d coins", ErrCounterfeitOutOfRange, counterfeit, f.coins)
	}

	n := f.coins
	anc := n
	c := quantum.NewCircuit(n+1, n+1)

	// Phase 1: even-parity preparation attempt.
	for q := 0; q < n; q++ {
		c.H(q)
	}
	for q := 0; q < n; q++ {
		c.CX(q, anc)
	}
	c.Measure(anc, anc)

	// Phase 2: oracle query via phase kickback.
	c.XIf(anc, anc, 0)
	c.HIf(anc, anc, 0)
	c.CXIf(counterfeit, anc, anc, 0)

	// Phase 3: readout transform.
	for q := 0; q < n; q++ {
		c.HIf(q, anc, 0)
	}
	for q := 0; q < n; q++ {
		c.Measure(q, q)
	}

	return c, nil
}

// TrialResult is the outcome of one successful trial.
type TrialResult struct {
	// Index is the decoded counterfeit coin position.
	Index int
	// Outcome is the measured query bit-string (coin N-1 leftmost, ancilla
	// bit stripped). It is the indicator of Index or its complement.
	Outcome string
	// Attempts is the number of preparation attempts this trial consumed.
	Attempts int
}

// Run executes one logical trial: single-shot executions are repeated until
// the parity preparation succeeds or the retry bound is exhausted.
func (f *Finder) Run(counterfeit int, seed int64) (*TrialResult, error) {
	circ, err := f.Circuit(counterfeit)
	if err != nil {
		return nil, err
	}

	// Every attempt needs a fresh shot seed, otherwise a failed preparation
	// would replay identically forever.
	rng := rand.New(rand.NewSource(seed))

	for attempt := 1; attempt <= f.maxPrepRetries; attempt++ {
		res, err := f.backend.Execute(circ, 1, rng.Int63())
		if err != nil {
			return nil, fmt.Errorf("backend execution: %w", err)
		}
		metrics.ShotsTotal.Inc()

		readout := res.Readouts[0]
		index, err := Decode(readout, f.coins)
		if errors.Is(err, ErrPreparationFailed) {
			metrics.PrepFailuresTotal.Inc()
			f.log.Debug().Int("attempt", attempt).Msg("odd parity sector, retrying preparation")
			continue
		}
		if err != nil {
			return nil, err
		}

		metrics.TrialsTotal.Inc()
		return &TrialResult{
			Index:    index,
			Outcome:  queryPattern(readout, f.coins),
			Attempts: attempt,
		}, nil
	}

	return nil, fmt.Errorf("%w after %d attempts", ErrPreparationNotConverged, f.maxPrepRetries)
}

// SearchOutcome aggregates repeated trials into a single report.
type SearchOutcome struct {
	// Index is the majority-voted counterfeit position.
	Index int
	// Shots is the number of completed trials.
	Shots int
	// Counts histograms the observed query bit-strings.
	Counts map[string]int
	// TotalAttempts sums the preparation attempts over all trials.
	TotalAttempts int
}

// Find runs shots independent trials and majority-votes the reported index.
// On a noiseless backend every trial votes for the same position.
func (f *Finder) Find(counterfeit, shots int, seed int64) (*SearchOutcome, error) {
	if shots < 1 {
		shots = 1
	}

	rng := rand.New(rand.NewSource(seed))
	out := &SearchOutcome{
		Shots:  shots,
		Counts: make(map[string]int),
	}
	votes := make(map[int]int)

	for i := 0; i < shots; i++ {
		trial, err := f.Run(counterfeit, rng.Int63())
		if err != nil {
			return nil, err
		}
		out.Counts[trial.Outcome]++
		out.TotalAttempts += trial.Attempts
		votes[trial.Index]++
	}

	best, bestVotes := -1, -1
	for index, n := range votes {
		if n > bestVotes || (n == bestVotes && index < best) {
			best, bestVotes = index, n
		}
	}
	out.Index = best

	f.log.Info().
		Int("index", out.Index).
		Int("shots", shots).
		Int("attempts", out.TotalAttempts).
		Msg("search finished")

	return out, nil
}
