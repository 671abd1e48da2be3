package quantum

import "fmt"

// Op identifies the kind of a circuit instruction
type Op string

const (
	OpH       Op = "h"
	OpX       Op = "x"
	OpCX      Op = "cx"
	OpCZ      Op = "cz"
	OpMeasure Op = "measure"
)

// Instruction is a single gate or measurement. An instruction may carry a
// classical condition: it executes only when the named classical bit holds
// the required value at that point of the shot.
type Instruction struct {
	Op      Op
	Target  int
	Control int // control qubit for cx/cz, -1 otherwise
	Clbit   int // destination classical bit for measure, -1 otherwise
	CondBit int // classical bit the instruction is conditioned on, -1 if none
	CondVal int // value CondBit must hold for the instruction to run
}

// Conditioned reports whether the instruction carries a classical condition
func (in Instruction) Conditioned() bool {
	return in.CondBit >= 0
}

// Circuit is an ordered list of instructions over a quantum register of
// Qubits qubits and a classical register of Clbits bits.
type Circuit struct {
	Qubits       int
	Clbits       int
	Instructions []Instruction
}

// NewCircuit creates an empty circuit with the given register widths
func NewCircuit(qubits, clbits int) *Circuit {
	return &Circuit{Qubits: qubits, Clbits: clbits}
}

func (c *Circuit) add(in Instruction) {
	c.Instructions = append(c.Instructions, in)
}

// H appends a Hadamard gate on qubit q
func (c *Circuit) H(q int) {
	c.add(Instruction{Op: OpH, Target: q, Control: -1, Clbit: -1, CondBit: -1})
}

// X appends a Pauli-X gate on qubit q
func (c *Circuit) X(q int) {
	c.add(Instruction{Op: OpX, Target: q, Control: -1, Clbit: -1, CondBit: -1})
}

// CX appends a controlled-NOT gate
func (c *Circuit) CX(control, target int) {
	c.add(Instruction{Op: OpCX, Target: target, Control: control, Clbit: -1, CondBit: -1})
}

// CZ appends a controlled-Z gate
func (c *Circuit) CZ(control, target int) {
	c.add(Instruction{Op: OpCZ, Target: target, Control: control, Clbit: -1, CondBit: -1})
}

// Measure appends a measurement of qubit q into classical bit cl
func (c *Circuit) Measure(q, cl int) {
	c.add(Instruction{Op: OpMeasure, Target: q, Control: -1, Clbit: cl, CondBit: -1})
}

// HIf appends a Hadamard gate on qubit q gated on classical bit condBit
// holding condVal
func (c *Circuit) HIf(q, condBit, condVal int) {
	c.add(Instruction{Op: OpH, Target: q, Control: -1, Clbit: -1, CondBit: condBit, CondVal: condVal})
}

// XIf appends a Pauli-X gate on qubit q gated on classical bit condBit
// holding condVal
func (c *Circuit) XIf(q, condBit, condVal int) {
	c.add(Instruction{Op: OpX, Target: q, Control: -1, Clbit: -1, CondBit: condBit, CondVal: condVal})
}

// CXIf appends a controlled-NOT gate gated on classical bit condBit holding
// condVal
func (c *Circuit) CXIf(control, target, condBit, condVal int) {
	c.add(Instruction{Op: OpCX, Target: target, Control: control, Clbit: -1, CondBit: condBit, CondVal: condVal})
}

// Validate checks every instruction against the register widths
func (c *Circuit) Validate() error {
	if c.Qubits < 1 {
		return fmt.Errorf("circuit needs at least one qubit, got %d", c.Qubits)
	}
	if c.Clbits < 0 {
		return fmt.Errorf("invalid classical register width %d", c.Clbits)
	}

	for i, in := range c.Instructions {
		if in.Target < 0 || in.Target >= c.Qubits {
			return fmt.Errorf("instruction %d: target qubit %d out of range [0,%d)", i, in.Target, c.Qubits)
		}
		switch in.Op {
		case OpCX, OpCZ:
			if in.Control < 0 || in.Control >= c.Qubits {
				return fmt.Errorf("instruction %d: control qubit %d out of range [0,%d)", i, in.Control, c.Qubits)
			}
			if in.Control == in.Target {
				return fmt.Errorf("instruction %d: control and target are both qubit %d", i, in.Target)
			}
		case OpMeasure:
			if in.Clbit < 0 || in.Clbit >= c.Clbits {
				return fmt.Errorf("instruction %d: classical bit %d out of range [0,%d)", i, in.Clbit, c.Clbits)
			}
		case OpH, OpX:
		default:
			return fmt.Errorf("instruction %d: unknown op %q", i, in.Op)
		}
		if in.Conditioned() {
			if in.CondBit >= c.Clbits {
				return fmt.Errorf("instruction %d: condition bit %d out of range [0,%d)", i, in.CondBit, c.Clbits)
			}
			if in.CondVal != 0 && in.CondVal != 1 {
				return fmt.Errorf("instruction %d: condition value must be 0 or 1, got %d", i, in.CondVal)
			}
		}
	}
	return nil
}
