package quantum

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCircuitValidate tests register bound checks
func TestCircuitValidate(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *Circuit
		wantErr bool
	}{
		{
			"valid circuit",
			func() *Circuit {
				c := NewCircuit(2, 2)
				c.H(0)
				c.CX(0, 1)
				c.Measure(1, 1)
				return c
			},
			false,
		},
		{
			"target out of range",
			func() *Circuit {
				c := NewCircuit(2, 2)
				c.H(2)
				return c
			},
			true,
		},
		{
			"control out of range",
			func() *Circuit {
				c := NewCircuit(2, 2)
				c.CX(3, 0)
				return c
			},
			true,
		},
		{
			"control equals target",
			func() *Circuit {
				c := NewCircuit(2, 2)
				c.CX(1, 1)
				return c
			},
			true,
		},
		{
			"classical bit out of range",
			func() *Circuit {
				c := NewCircuit(2, 1)
				c.Measure(0, 1)
				return c
			},
			true,
		},
		{
			"condition bit out of range",
			func() *Circuit {
				c := NewCircuit(2, 1)
				c.HIf(0, 1, 0)
				return c
			},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build().Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestConditionalExecution tests that classically gated instructions follow
// the measured bit
func TestConditionalExecution(t *testing.T) {
	sim := NewSimulator()

	t.Run("condition met", func(t *testing.T) {
		c := NewCircuit(2, 2)
		c.X(0)
		c.Measure(0, 0)
		c.XIf(1, 0, 1)
		c.Measure(1, 1)

		res, err := sim.Execute(c, 1, 1)
		require.NoError(t, err)
		readout := res.Readouts[0]
		assert.Equal(t, 1, readout.Bit(0))
		assert.Equal(t, 1, readout.Bit(1), "gate conditioned on c[0]==1 must run")
	})

	t.Run("condition not met", func(t *testing.T) {
		c := NewCircuit(2, 2)
		c.Measure(0, 0) // deterministically 0
		c.XIf(1, 0, 1)
		c.Measure(1, 1)

		res, err := sim.Execute(c, 1, 1)
		require.NoError(t, err)
		readout := res.Readouts[0]
		assert.Equal(t, 0, readout.Bit(0))
		assert.Equal(t, 0, readout.Bit(1), "gate conditioned on c[0]==1 must be skipped")
	})

	t.Run("condition on zero value", func(t *testing.T) {
		c := NewCircuit(2, 2)
		c.Measure(0, 0)
		c.XIf(1, 0, 0)
		c.Measure(1, 1)

		res, err := sim.Execute(c, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Readouts[0].Bit(1))
	})
}

// TestExportQASM tests the OpenQASM rendering, including mid-circuit
// measurement order and single-bit conditions
func TestExportQASM(t *testing.T) {
	c := NewCircuit(3, 3)
	c.H(0)
	c.CX(0, 2)
	c.Measure(2, 2)
	c.HIf(0, 2, 0)
	c.Measure(0, 0)

	qasm := ExportQASM(c)

	assert.True(t, strings.HasPrefix(qasm, "OPENQASM 2.0;\n"))
	assert.Contains(t, qasm, "include \"qelib1.inc\";")
	assert.Contains(t, qasm, "qreg q[3];")
	assert.Contains(t, qasm, "creg c[3];")
	assert.Contains(t, qasm, "h q[0];")
	assert.Contains(t, qasm, "cx q[0],q[2];")
	assert.Contains(t, qasm, "if (c[2]==0) h q[0];")

	// The ancilla measurement must precede the conditioned Hadamard.
	measPos := strings.Index(qasm, "measure q[2] -> c[2];")
	condPos := strings.Index(qasm, "if (c[2]==0) h q[0];")
	require.GreaterOrEqual(t, measPos, 0)
	require.GreaterOrEqual(t, condPos, 0)
	assert.Less(t, measPos, condPos)
}
