package value

// Reason tells why an operator could not be applied.
type Reason uint8

const (
	// OperandsNaN: an operator defined on numbers only got something else.
	OperandsNaN Reason = iota + 1
	// InvalidOperands: '+' got neither two numbers nor two strings.
	InvalidOperands
	DivisionByZero
)

func (r Reason) String() string {
	switch r {
	case OperandsNaN:
		return "operands must be numbers"
	case InvalidOperands:
		return "operands must be two numbers or two strings"
	case DivisionByZero:
		return "division by zero"
	}
	return "unknown arithmetic failure"
}

// ArithmeticError is the sentinel produced by a failed operator application.
// It never escapes the evaluator: callers turn it into a runtime error.
type ArithmeticError struct {
	Reason Reason
}

func (ArithmeticError) value() {}

func (e ArithmeticError) String() string {
	return "<arithmetic error: " + e.Reason.String() + ">"
}

func (e ArithmeticError) GoString() string { return e.String() }

// IsArithmeticError reports whether v is the failure sentinel.
func IsArithmeticError(v Value) (ArithmeticError, bool) {
	e, ok := v.(ArithmeticError)
	return e, ok
}

func numbers(a, b Value) (Number, Number, bool) {
	l, lok := a.(Number)
	r, rok := b.(Number)
	return l, r, lok && rok
}

func Add(a, b Value) Value {
	switch l := a.(type) {
	case Number:
		if r, ok := b.(Number); ok {
			return l + r
		}
	case String:
		if r, ok := b.(String); ok {
			return l + r
		}
	}
	return ArithmeticError{Reason: InvalidOperands}
}

func Subtract(a, b Value) Value {
	if l, r, ok := numbers(a, b); ok {
		return l - r
	}
	return ArithmeticError{Reason: OperandsNaN}
}

func Multiply(a, b Value) Value {
	if l, r, ok := numbers(a, b); ok {
		return l * r
	}
	return ArithmeticError{Reason: OperandsNaN}
}

// Divide fails on a zero divisor instead of producing an infinity.
func Divide(a, b Value) Value {
	l, r, ok := numbers(a, b)
	if !ok {
		return ArithmeticError{Reason: OperandsNaN}
	}
	if r == 0 {
		return ArithmeticError{Reason: DivisionByZero}
	}
	return l / r
}

// Negate applies unary minus.
func Negate(v Value) Value {
	if n, ok := v.(Number); ok {
		return -n
	}
	return ArithmeticError{Reason: OperandsNaN}
}

// Not applies logical negation using truthiness.
func Not(v Value) Value {
	return Bool(!Truthy(v))
}

func ordered(a, b Value, accept func(l, r Number) bool) Value {
	l, r, ok := numbers(a, b)
	if !ok {
		return ArithmeticError{Reason: OperandsNaN}
	}
	return Bool(accept(l, r))
}

func Greater(a, b Value) Value {
	return ordered(a, b, func(l, r Number) bool { return l > r })
}

func GreaterEqual(a, b Value) Value {
	return ordered(a, b, func(l, r Number) bool { return l >= r })
}

func Less(a, b Value) Value {
	return ordered(a, b, func(l, r Number) bool { return l < r })
}

func LessEqual(a, b Value) Value {
	return ordered(a, b, func(l, r Number) bool { return l <= r })
}

// Equal is structural equality; values of different variants are never equal.
func Equal(a, b Value) Value {
	if a == nil {
		a = Nil
	}
	if b == nil {
		b = Nil
	}
	return Bool(a == b)
}

func NotEqual(a, b Value) Value {
	return Bool(!bool(Equal(a, b).(Bool)))
}
