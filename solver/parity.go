// SPDX-License-Identifier: MIT

package solver

// Parity is the even/odd class of an integer.
type Parity int

const (
	// Even marks values whose least significant bit is 0.
	Even Parity = iota
	// Odd marks values whose least significant bit is 1.
	Odd
)

// ParityOf returns the parity of v from its least significant bit.
// Negative values follow two's complement, so -3 is Odd and -4 is Even.
func ParityOf(v int) Parity {
	return Parity(v & 1)
}

// Invert returns the opposite parity.
func (p Parity) Invert() Parity {
	if p == Even {
		return Odd
	}

	return Even
}

// String implements fmt.Stringer.
func (p Parity) String() string {
	switch p {
	case Even:
		return "even"
	case Odd:
		return "odd"
	default:
		return "Parity(?)"
	}
}
