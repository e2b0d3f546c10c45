// Package value defines the dynamic runtime values of Cedar programs and the
// pure operator functions over them.
package value

import (
	"fmt"
	"strconv"

	"github.com/spf13/cast"
)

// Value is a closed tagged union: Number, String, Bool, NilValue and the
// internal ArithmeticError sentinel. All variants are comparable with ==,
// which is the structural equality of the language.
type Value interface {
	fmt.Stringer
	fmt.GoStringer

	value()
}

type (
	Number   float64
	String   string
	Bool     bool
	NilValue struct{}
)

var (
	Nil   Value = NilValue{}
	True  Value = Bool(true)
	False Value = Bool(false)
)

func (Number) value()   {}
func (String) value()   {}
func (Bool) value()     {}
func (NilValue) value() {}

// String implements fmt.Stringer. Numbers print in plain decimal form with
// no trailing zeros, so 7.0 displays as "7" and 1e21 as all of its digits.
func (n Number) String() string {
	return cast.ToString(float64(n))
}

func (s String) String() string { return string(s) }

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

func (NilValue) String() string { return "null" }

func (n Number) GoString() string   { return n.String() }
func (s String) GoString() string   { return strconv.Quote(string(s)) }
func (b Bool) GoString() string     { return b.String() }
func (v NilValue) GoString() string { return v.String() }

// Display returns the form written by a print statement.
func Display(v Value) string {
	if v == nil {
		return Nil.String()
	}
	return v.String()
}

// Truthy reports whether v counts as true: only null and false are falsy.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case nil, NilValue:
		return false
	case Bool:
		return bool(v)
	}
	return true
}

var (
	_ Value = Number(0)
	_ Value = String("")
	_ Value = Bool(false)
	_ Value = NilValue{}
	_ Value = ArithmeticError{}
)
