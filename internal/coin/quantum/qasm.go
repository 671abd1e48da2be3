package quantum

import (
	"fmt"
	"strings"
)

// QASMBuilder builds OpenQASM 2.0 circuit text. Instruction order is
// preserved, so mid-circuit measurements interleave correctly with the gates
// conditioned on them.
type QASMBuilder struct {
	version     string
	includeStmt string
	registers   []string
	body        []string
}

// NewQASMBuilder creates a new OpenQASM circuit builder
func NewQASMBuilder(numQubits int, numClassical int) *QASMBuilder {
	builder := &QASMBuilder{
		version:     "OPENQASM 2.0;",
		includeStmt: "include \"qelib1.inc\";",
		registers:   make([]string, 0),
		body:        make([]string, 0),
	}

	builder.registers = append(builder.registers,
		fmt.Sprintf("qreg q[%d];", numQubits),
		fmt.Sprintf("creg c[%d];", numClassical),
	)

	return builder
}

// AddGate adds a quantum gate operation
func (b *QASMBuilder) AddGate(gate string) {
	b.body = append(b.body, gate)
}

// AddMeasurement adds a measurement operation
func (b *QASMBuilder) AddMeasurement(qubit int, classical int) {
	b.body = append(b.body,
		fmt.Sprintf("measure q[%d] -> c[%d];", qubit, classical))
}

// Build generates the complete QASM circuit string
func (b *QASMBuilder) Build() string {
	var circuit strings.Builder

	circuit.WriteString(b.version + "\n")
	circuit.WriteString(b.includeStmt + "\n")
	circuit.WriteString("\n")

	for _, reg := range b.registers {
		circuit.WriteString(reg + "\n")
	}
	circuit.WriteString("\n")

	for _, line := range b.body {
		circuit.WriteString(line + "\n")
	}

	return circuit.String()
}

// ExportQASM renders a circuit as OpenQASM 2.0 text. Classical conditions use
// the single-bit form `if (c[i]==v) ...`.
func ExportQASM(c *Circuit) string {
	builder := NewQASMBuilder(c.Qubits, c.Clbits)

	for _, in := range c.Instructions {
		if in.Op == OpMeasure {
			builder.AddMeasurement(in.Target, in.Clbit)
			continue
		}

		var line string
		switch in.Op {
		case OpH, OpX:
			line = fmt.Sprintf("%s q[%d];", in.Op, in.Target)
		case OpCX, OpCZ:
			line = fmt.Sprintf("%s q[%d],q[%d];", in.Op, in.Control, in.Target)
		}
		if in.Conditioned() {
			line = fmt.Sprintf("if (c[%d]==%d) %s", in.CondBit, in.CondVal, line)
		}
		builder.AddGate(line)
	}

	return builder.Build()
}
