package coin

import (
	"fmt"
	"strings"

	"github.com/qcoinlab/go-qcc/internal/coin/quantum"
)

// Decode interprets a single-shot readout. Classical bit `coins` is the
// parity ancilla: 1 means the preparation failed and the shot carries no
// information (ErrPreparationFailed, retry). Otherwise the query bits hold
// the indicator of the counterfeit position or its bitwise complement, so the
// unique bit differing from the majority names the coin.
func Decode(r quantum.Readout, coins int) (int, error) {
	if r.Len() != coins+1 {
		return 0, fmt.Errorf("readout has %d bits, expected %d", r.Len(), coins+1)
	}
	if r.Bit(coins) == 1 {
		return 0, ErrPreparationFailed
	}

	// Ancilla bit is 0 here, so the popcount is the query register weight.
	switch weight := r.Ones(); weight {
	case 1:
		for q := 0; q < coins; q++ {
			if r.Bit(q) == 1 {
				return q, nil
			}
		}
	case coins - 1:
		for q := 0; q < coins; q++ {
			if r.Bit(q) == 0 {
				return q, nil
			}
		}
	default:
		return 0, fmt.Errorf("%w: weight %d of %d", ErrUnexpectedOutcome, weight, coins)
	}

	// Unreachable: the switch arms always find their unique bit.
	return 0, ErrUnexpectedOutcome
}

// queryPattern renders the query bits with coin N-1 leftmost, dropping the
// ancilla bit.
func queryPattern(r quantum.Readout, coins int) string {
	var b strings.Builder
	for q := coins - 1; q >= 0; q-- {
		if r.Bit(q) == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
