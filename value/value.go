/*
File: value/value.go

Package value implements Nhotyp's sole runtime datum: a bounded signed
integer scalar.

Every value-producing operation funnels through Wrap, which applies the
language's asymmetric masking rule: positive results are masked to the
low 48 bits; non-positive results pass through unbounded. Whether this
asymmetry is intentional or a quirk of the reference behavior is an open
question; this package preserves the observed behavior rather than
"fixing" it.
*/
package value

// Mask48 is the bitmask applied to positive results: 2^48 - 1.
const Mask48 = (int64(1) << 48) - 1

// Value is a Nhotyp scalar.
type Value struct {
	Int int64
}

// Of builds a Value by applying the masking rule to n.
func Of(n int64) Value {
	return Value{Int: Wrap(n)}
}

// Wrap applies the masking rule used after every producing operation:
// positive results are masked to 48 bits, non-positive results are kept
// as-is.
func Wrap(n int64) int64 {
	if n > 0 {
		return n & Mask48
	}
	return n
}

// Truthy reports whether v counts as true: nonzero means true.
func (v Value) Truthy() bool {
	return v.Int != 0
}

// BoolValue projects a Go bool to the language's 0/1 convention.
func BoolValue(b bool) Value {
	if b {
		return Value{Int: 1}
	}
	return Value{Int: 0}
}

func (v Value) Add(o Value) Value { return Of(v.Int + o.Int) }
func (v Value) Sub(o Value) Value { return Of(v.Int - o.Int) }
func (v Value) Mul(o Value) Value { return Of(v.Int * o.Int) }

// DivMod implements Nhotyp's Euclidean-like division rule.
// Division by zero yields (0, 0) rather than a fault.
func (v Value) DivMod(o Value) (quotient, remainder Value) {
	a, b := v.Int, o.Int
	if b == 0 {
		return Of(0), Of(0)
	}
	absB := b
	if absB < 0 {
		absB = -absB
	}
	if a > 0 {
		rem := a % b
		quot := a / b
		return Of(quot), Of(rem)
	}
	rem := (absB - (-a)%absB) % absB
	quot := (a - rem) / absB
	return Of(quot), Of(rem)
}

func (v Value) Div(o Value) Value {
	q, _ := v.DivMod(o)
	return q
}

func (v Value) Mod(o Value) Value {
	_, r := v.DivMod(o)
	return r
}

func (v Value) Eq(o Value) Value  { return BoolValue(v.Int == o.Int) }
func (v Value) Ne(o Value) Value  { return BoolValue(v.Int != o.Int) }
func (v Value) Lt(o Value) Value  { return BoolValue(v.Int < o.Int) }
func (v Value) Gt(o Value) Value  { return BoolValue(v.Int > o.Int) }
func (v Value) Le(o Value) Value  { return BoolValue(v.Int <= o.Int) }
func (v Value) Ge(o Value) Value  { return BoolValue(v.Int >= o.Int) }
func (v Value) And(o Value) Value { return BoolValue(v.Truthy() && o.Truthy()) }
func (v Value) Or(o Value) Value  { return BoolValue(v.Truthy() || o.Truthy()) }
func (v Value) Xor(o Value) Value { return BoolValue(v.Truthy() != o.Truthy()) }
func (v Value) Not() Value        { return BoolValue(!v.Truthy()) }
