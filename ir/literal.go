package ir

import (
	"math"
	"strconv"
	"strings"
)

// String returns the deterministic literal form of y.
func (y *Node) String() string {
	var sb strings.Builder
	y.writeLiteral(&sb)
	return sb.String()
}

func (y *Node) writeLiteral(sb *strings.Builder) {
	switch y.Type() {
	case NullType:
		sb.WriteString("null")
	case BoolType:
		sb.WriteString(strconv.FormatBool(y.b))
	case NumberType:
		sb.WriteString(FormatNumber(y.num))
	case StringType:
		sb.WriteString(strconv.Quote(y.str))
	case ArrayType:
		sb.WriteByte('[')
		for i, v := range y.values {
			if i > 0 {
				sb.WriteString(", ")
			}
			v.writeLiteral(sb)
		}
		sb.WriteByte(']')
	case ObjectType:
		sb.WriteByte('{')
		i := 0
		for k, v := range y.Fields() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Quote(k))
			sb.WriteString(": ")
			v.writeLiteral(sb)
			i++
		}
		sb.WriteByte('}')
	}
}

// FormatNumber renders f in the shortest form that parses back to f.
// Integral values below 1e21 are written without exponent or fraction.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
