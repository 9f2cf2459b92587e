package scs

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/avikara/semath/caltime"
)

// ValueKind tags a parsed value. Scalars are Number, String or Boolean;
// Array and Matrix carry a homogeneous element kind of their own.
type ValueKind int

const (
	None ValueKind = iota
	NumberValue
	StringValue
	BooleanValue
	ArrayValue
	MatrixValue
)

func (k ValueKind) String() string {
	switch k {
	case NumberValue:
		return "number"
	case StringValue:
		return "string"
	case BooleanValue:
		return "boolean"
	case ArrayValue:
		return "array"
	case MatrixValue:
		return "matrix"
	default:
		return "none"
	}
}

// Value is one parsed value. Items holds the raw scalar lexemes (strings
// keep their quotes); Sub is the sparse row map of a matrix, keyed by the
// item index each nested row group starts at.
type Value struct {
	Kind ValueKind
	// Elem is the element kind of an Array or Matrix; equal to Kind for
	// scalars.
	Elem  ValueKind
	Items []string
	Base  int
	Pos   Position
	Sub   map[int]*Value

	// isVariable marks a value produced from a registered Variable token;
	// the log-level directive inspects it.
	isVariable bool
}

// ErrNotScalar is returned when a compound value is read as a scalar.
var ErrNotScalar = errors.New("scs: value is not convertible to a single scalar")

// ErrKindMismatch is returned when a value is read as the wrong kind.
var ErrKindMismatch = errors.New("scs: value kind mismatch")

// unquote strips the surrounding double quotes of a stored string lexeme.
func unquote(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}

// Number returns the item at idx as a float64.
func (v *Value) Number(idx int) (float64, error) {
	if v.Elem != NumberValue || idx >= len(v.Items) {
		return 0, ErrKindMismatch
	}
	if v.Base == 16 && strings.ContainsAny(v.Items[idx], ".pP") {
		// Hexadecimal floats convert directly.
		f, err := strconv.ParseFloat(v.Items[idx], 64)
		if err != nil {
			return 0, errors.Wrap(err, "scs: bad hexadecimal float literal")
		}
		return f, nil
	}
	if v.Base != 10 && v.Base != 0 {
		n, err := strconv.ParseInt(stripBasePrefix(v.Items[idx]), v.Base, 64)
		if err != nil {
			return 0, errors.Wrap(err, "scs: bad integer literal")
		}
		return float64(n), nil
	}
	f, err := strconv.ParseFloat(v.Items[idx], 64)
	if err != nil {
		return 0, errors.Wrap(err, "scs: bad numeric literal")
	}
	return f, nil
}

// Int returns the item at idx as an int64, honouring the literal's base
// prefix.
func (v *Value) Int(idx int) (int64, error) {
	if v.Elem != NumberValue || idx >= len(v.Items) {
		return 0, ErrKindMismatch
	}
	base := v.Base
	if base == 0 {
		base = 10
	}
	return strconv.ParseInt(stripBasePrefix(v.Items[idx]), base, 64)
}

func stripBasePrefix(s string) string {
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "+"), "-")
	for _, p := range []string{"0x", "0X", "0b", "0B"} {
		if strings.HasPrefix(s, p) {
			s = s[2:]
			break
		}
	}
	if neg {
		return "-" + s
	}
	return s
}

// Str returns the item at idx as an unquoted string.
func (v *Value) Str(idx int) (string, error) {
	if v.Elem != StringValue || idx >= len(v.Items) {
		return "", ErrKindMismatch
	}
	return unquote(v.Items[idx]), nil
}

// Bool returns the item at idx as a bool.
func (v *Value) Bool(idx int) (bool, error) {
	if v.Elem != BooleanValue || idx >= len(v.Items) {
		return false, ErrKindMismatch
	}
	return v.Items[idx] == "true", nil
}

// Scalar returns the single scalar of a non-compound value.
func (v *Value) Scalar() (string, error) {
	if v.Kind == ArrayValue || v.Kind == MatrixValue || len(v.Items) == 0 {
		return "", ErrNotScalar
	}
	if v.Kind == StringValue {
		return unquote(v.Items[0]), nil
	}
	return v.Items[0], nil
}

// Floats returns every item of a numeric value as float64s.
func (v *Value) Floats() ([]float64, error) {
	if v.Elem != NumberValue {
		return nil, ErrKindMismatch
	}
	out := make([]float64, len(v.Items))
	for i := range v.Items {
		f, err := v.Number(i)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// DateTime parses a string value through the published date grammars; a
// bare year is also accepted.
func (v *Value) DateTime() (caltime.DateTime, error) {
	s, err := v.Str(0)
	if err != nil {
		return caltime.DateTime{}, err
	}
	dt, err := caltime.ParseDateTime(s)
	if err == nil {
		return dt, nil
	}
	if year, convErr := strconv.Atoi(strings.TrimSpace(s)); convErr == nil {
		return caltime.DateTime{Date: caltime.Date{Year: year, Month: 1, Day: 1}}, nil
	}
	return caltime.DateTime{}, err
}

// Source renders the value back to script syntax.
func (v *Value) Source() string {
	switch v.Kind {
	case ArrayValue:
		return "(" + strings.Join(v.Items, ", ") + ")"
	case MatrixValue:
		var sb strings.Builder
		sb.WriteString("{ ")
		for i := 0; i <= len(v.Items); i++ {
			if v.Sub != nil {
				if sv, ok := v.Sub[i]; ok {
					sb.WriteString(sv.Source())
					sb.WriteByte(' ')
				}
			}
			if i < len(v.Items) {
				sb.WriteString(v.Items[i])
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('}')
		return sb.String()
	default:
		if len(v.Items) == 0 {
			return ""
		}
		return v.Items[0]
	}
}

// KeyValue is one record of a table: a key, its values in source order,
// and an optional child table.
type KeyValue struct {
	Key    string
	Values []Value
	Sub    *Table
}

// Table is an ordered sequence of records. Child tables form a tree; a
// record's Sub pointer stays valid for the lifetime of its parent.
type Table struct {
	Entries []KeyValue
}

// Find returns the first record with the given key, or nil.
func (t *Table) Find(key string) *KeyValue {
	for i := range t.Entries {
		if t.Entries[i].Key == key {
			return &t.Entries[i]
		}
	}
	return nil
}

// FindAll returns every record with the given key, in source order.
func (t *Table) FindAll(key string) []*KeyValue {
	var out []*KeyValue
	for i := range t.Entries {
		if t.Entries[i].Key == key {
			out = append(out, &t.Entries[i])
		}
	}
	return out
}

// FindWithPrefix returns the first record whose key begins with prefix,
// which is how unit-suffixed keys (MassKg, RadiusKm) are located.
func (t *Table) FindWithPrefix(prefix string) *KeyValue {
	for i := range t.Entries {
		if strings.HasPrefix(t.Entries[i].Key, prefix) {
			return &t.Entries[i]
		}
	}
	return nil
}
