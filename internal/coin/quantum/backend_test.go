package quantum

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSimulatorExecute tests shot accounting and error paths
func TestSimulatorExecute(t *testing.T) {
	sim := NewSimulator()

	t.Run("counts sum to shots", func(t *testing.T) {
		c := NewCircuit(3, 3)
		for q := 0; q < 3; q++ {
			c.H(q)
			c.Measure(q, q)
		}

		res, err := sim.Execute(c, 200, 7)
		require.NoError(t, err)
		assert.Equal(t, "statevector", res.Backend)
		assert.Len(t, res.Readouts, 200)

		total := 0
		for _, n := range res.Counts {
			total += n
		}
		assert.Equal(t, 200, total)
	})

	t.Run("same seed reproduces counts", func(t *testing.T) {
		c := NewCircuit(2, 2)
		c.H(0)
		c.CX(0, 1)
		c.Measure(0, 0)
		c.Measure(1, 1)

		first, err := sim.Execute(c, 100, 99)
		require.NoError(t, err)
		second, err := sim.Execute(c, 100, 99)
		require.NoError(t, err)

		assert.Equal(t, first.Counts, second.Counts)
	})

	t.Run("rejects nil circuit", func(t *testing.T) {
		_, err := sim.Execute(nil, 1, 0)
		assert.Error(t, err)
	})

	t.Run("rejects invalid circuit", func(t *testing.T) {
		c := NewCircuit(2, 2)
		c.H(5)
		_, err := sim.Execute(c, 1, 0)
		assert.Error(t, err)
	})

	t.Run("rejects zero shots", func(t *testing.T) {
		c := NewCircuit(1, 1)
		c.Measure(0, 0)
		_, err := sim.Execute(c, 0, 0)
		assert.Error(t, err)
	})

	t.Run("enforces qubit budget", func(t *testing.T) {
		small := NewSimulator()
		small.SetMaxQubits(4)

		c := NewCircuit(5, 5)
		c.H(0)
		_, err := small.Execute(c, 1, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRegisterTooWide)
	})
}

// TestReadout tests bit access and string rendering conventions
func TestReadout(t *testing.T) {
	t.Run("string is MSB first", func(t *testing.T) {
		sim := NewSimulator()
		c := NewCircuit(3, 3)
		c.X(2)
		for q := 0; q < 3; q++ {
			c.Measure(q, q)
		}

		res, err := sim.Execute(c, 1, 0)
		require.NoError(t, err)
		assert.Equal(t, "100", res.Readouts[0].String())
	})

	t.Run("bit accessors", func(t *testing.T) {
		bits := bitset.New(4)
		bits.Set(0)
		bits.Set(3)
		readout := NewReadout(bits, 4)

		assert.Equal(t, 4, readout.Len())
		assert.Equal(t, 2, readout.Ones())
		assert.Equal(t, 1, readout.Bit(0))
		assert.Equal(t, 0, readout.Bit(1))
		assert.Equal(t, 1, readout.Bit(3))
		assert.Equal(t, "1001", readout.String())
	})
}
