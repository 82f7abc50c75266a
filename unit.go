package pathcore

import (
	"math"
	"strconv"
	"strings"
)

// UnitOfLength enumerates the units of length a path can be authored in.
// The zero value is invalid; UnitInch is the format's native unit.
type UnitOfLength uint8

const (
	UnitMillimeter UnitOfLength = iota + 1
	UnitCentimeter
	UnitMeter
	UnitInch
	UnitFoot
)

// inchesPerUnit holds the canonical conversion factor of each unit,
// expressed as the number of inches in one unit.
var inchesPerUnit = map[UnitOfLength]float64{
	UnitMillimeter: 1.0 / 25.4,
	UnitCentimeter: 1.0 / 2.54,
	UnitMeter:      1000.0 / 25.4,
	UnitInch:       1,
	UnitFoot:       12,
}

// Factor returns the number of inches in one of the unit.
// Unknown units report a factor of 0.
func (u UnitOfLength) Factor() float64 {
	return inchesPerUnit[u]
}

// String returns the conventional abbreviation of the unit.
func (u UnitOfLength) String() string {
	switch u {
	case UnitMillimeter:
		return "mm"
	case UnitCentimeter:
		return "cm"
	case UnitMeter:
		return "m"
	case UnitInch:
		return "inch"
	case UnitFoot:
		return "ft"
	default:
		return "unknown"
	}
}

// ParseUnit resolves a unit from its abbreviation or full name.
func ParseUnit(name string) (UnitOfLength, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mm", "millimeter":
		return UnitMillimeter, true
	case "cm", "centimeter":
		return UnitCentimeter, true
	case "m", "meter":
		return UnitMeter, true
	case "in", "inch":
		return UnitInch, true
	case "ft", "foot":
		return UnitFoot, true
	default:
		return 0, false
	}
}

// The format mandates three decimal places for every numeric field.
const formatPrecision = 3

// UnitConverter converts lengths between a fixed pair of units, rounding
// every result to the format's decimal precision. Converters are
// stateless values; FromAtoB and FromBtoA are exact inverses up to that
// rounding.
type UnitConverter struct {
	from, to  UnitOfLength
	precision int
}

// NewUnitConverter creates a converter from unit A to unit B at the
// format's standard 3-decimal precision.
func NewUnitConverter(from, to UnitOfLength) UnitConverter {
	return UnitConverter{from: from, to: to, precision: formatPrecision}
}

// From returns the converter's source unit.
func (c UnitConverter) From() UnitOfLength {
	return c.from
}

// To returns the converter's target unit.
func (c UnitConverter) To() UnitOfLength {
	return c.to
}

// FromAtoB converts a length in unit A to unit B.
func (c UnitConverter) FromAtoB(x float64) float64 {
	return c.FixPrecision(x * c.from.Factor() / c.to.Factor())
}

// FromBtoA converts a length in unit B to unit A.
func (c UnitConverter) FromBtoA(x float64) float64 {
	return c.FixPrecision(x * c.to.Factor() / c.from.Factor())
}

// FixPrecision rounds x to the converter's decimal precision using
// round-half-away-from-zero on the decimal digits, then re-parses the
// rounded string as a float. The double rounding reproduces the
// format's reference behavior and is intentional.
func (c UnitConverter) FixPrecision(x float64) float64 {
	return fixPrecision(x, c.precision)
}

func fixPrecision(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	// 20 fractional digits is far beyond anything that can flip the
	// digit at the rounding position for field-scale coordinates.
	s := roundDecimalString(strconv.FormatFloat(x, 'f', 20, 64), places)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return x
	}
	return v
}

// roundDecimalString rounds a plain decimal string ("-123.456...") to
// the given number of fractional digits, half away from zero.
func roundDecimalString(s string, places int) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.IndexByte(s, '.')
	if dot < 0 || len(s)-dot-1 <= places {
		if neg {
			return "-" + s
		}
		return s
	}
	intPart := s[:dot]
	frac := s[dot+1:]
	roundUp := frac[places] >= '5'
	digits := []byte(intPart + frac[:places])
	if roundUp {
		i := len(digits) - 1
		for ; i >= 0; i-- {
			if digits[i] == '9' {
				digits[i] = '0'
			} else {
				digits[i]++
				break
			}
		}
		if i < 0 {
			digits = append([]byte{'1'}, digits...)
		}
	}
	out := string(digits[:len(digits)-places])
	if places > 0 {
		out += "." + string(digits[len(digits)-places:])
	}
	if neg {
		return "-" + out
	}
	return out
}

// formatNumber renders a value the way the format expects: a plain
// decimal with no trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
