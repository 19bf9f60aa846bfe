package controllable

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CSSValue is a number carrying a unit suffix, such as "100px" or "45deg".
type CSSValue string

// Float returns the leading number of the value. See ParseLength.
func (v CSSValue) Float() float64 {
	return ParseLength(string(v))
}

// UnmarshalTOML accepts integers, floats and strings so that config files
// may write either width = 120 or width = "120px".
func (v *CSSValue) UnmarshalTOML(data any) error {
	switch d := data.(type) {
	case int64:
		*v = NormalizeCSSValue(float64(d))
	case float64:
		*v = NormalizeCSSValue(d)
	case string:
		*v = NormalizeCSSValue(d)
	default:
		return fmt.Errorf("css value: unsupported type %T", data)
	}
	return nil
}

// lengthPrecision is the number of decimals kept when formatting.
const lengthPrecision = 1e6

// numericPrefix returns the longest prefix of s that reads as a decimal
// number, in the forms accepted by strconv.ParseFloat.
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
			frac++
		}
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return ""
	}
	// Exponent only counts when followed by at least one digit.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && s[k] >= '0' && s[k] <= '9' {
			k++
		}
		if k > j {
			i = k
		}
	}
	return s[:i]
}

// ParseLength extracts the number from a unit-suffixed value ("120px" -> 120).
// Unparseable input yields 0 so that layout stays renderable.
func ParseLength(v string) float64 {
	p := numericPrefix(strings.TrimSpace(v))
	if p == "" {
		return 0
	}
	f, err := strconv.ParseFloat(p, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// FormatLength formats n with the given unit suffix, e.g. (120, "px") -> "120px".
// Values are rounded to six decimals.
func FormatLength(n float64, unit string) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		n = 0
	}
	n = math.Round(n*lengthPrecision) / lengthPrecision
	if n == 0 {
		n = 0 // drop negative zero
	}
	return strconv.FormatFloat(n, 'f', -1, 64) + unit
}

// NormalizeCSSValue converts a number or string into a CSSValue. Numbers and
// unitless numeric strings get a "px" suffix; other strings pass through.
func NormalizeCSSValue(v any) CSSValue {
	switch n := v.(type) {
	case CSSValue:
		return NormalizeCSSValue(string(n))
	case string:
		s := strings.TrimSpace(n)
		if s != "" && numericPrefix(s) == s {
			return CSSValue(FormatLength(ParseLength(s), "px"))
		}
		return CSSValue(s)
	case int:
		return CSSValue(FormatLength(float64(n), "px"))
	case int64:
		return CSSValue(FormatLength(float64(n), "px"))
	case float32:
		return CSSValue(FormatLength(float64(n), "px"))
	case float64:
		return CSSValue(FormatLength(n, "px"))
	default:
		return "0px"
	}
}

// AngleValue is a rotation carrying an angle unit, such as "45deg".
type AngleValue string

// UnmarshalTOML accepts rotate = 45 and rotate = "45" as degrees, and
// strings with an explicit unit as written.
func (v *AngleValue) UnmarshalTOML(data any) error {
	switch d := data.(type) {
	case int64, float64, string:
		*v = NormalizeAngle(d)
	default:
		return fmt.Errorf("angle value: unsupported type %T", data)
	}
	return nil
}

// NormalizeAngle converts a number or string into an AngleValue. Numbers and
// unitless numeric strings are degrees and get a "deg" suffix; an empty
// value is "0deg". Other strings pass through.
func NormalizeAngle(v any) AngleValue {
	switch n := v.(type) {
	case AngleValue:
		return NormalizeAngle(string(n))
	case CSSValue:
		return NormalizeAngle(string(n))
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return "0deg"
		}
		if numericPrefix(s) == s {
			return AngleValue(FormatLength(ParseLength(s), "deg"))
		}
		return AngleValue(s)
	case int:
		return AngleValue(FormatLength(float64(n), "deg"))
	case int64:
		return AngleValue(FormatLength(float64(n), "deg"))
	case float32:
		return AngleValue(FormatLength(float64(n), "deg"))
	case float64:
		return AngleValue(FormatLength(n, "deg"))
	default:
		return "0deg"
	}
}

// ParseAngle returns an angle value in degrees. The deg, rad, grad and turn
// units are recognized; a bare number or unknown unit is read as degrees.
func ParseAngle(v string) float64 {
	s := strings.TrimSpace(v)
	p := numericPrefix(s)
	n := ParseLength(p)
	switch strings.ToLower(strings.TrimSpace(s[len(p):])) {
	case "rad":
		return n * 180 / math.Pi
	case "grad":
		return n * 0.9
	case "turn":
		return n * 360
	default:
		return n
	}
}
