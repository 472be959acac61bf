package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidNumber is returned when an atom index or residue number cannot be
// read as an integer.
var ErrInvalidNumber = errors.New("invalid number")

// NumberError carries the raw input that failed to parse as an Index.
type NumberError struct {
	Input string
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("invalid number value: %s", e.Input)
}

func (e *NumberError) Unwrap() error { return ErrInvalidNumber }

// Index is an optional integer. The viewer sends indices and residue numbers
// either as JSON numbers or as numeric strings, and uses null for "unset".
type Index struct {
	Value int
	Set   bool
}

// Int returns a set Index.
func Int(n int) Index {
	return Index{Value: n, Set: true}
}

// ParseIndex parses a decimal integer, allowing surrounding whitespace and a
// leading sign.
func ParseIndex(s string) (Index, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Index{}, &NumberError{Input: strconv.Quote(s)}
	}
	return Int(n), nil
}

// Get returns the value and whether it is set.
func (i Index) Get() (int, bool) {
	return i.Value, i.Set
}

// Is reports whether the index is set and equal to n.
func (i Index) Is(n int) bool {
	return i.Set && i.Value == n
}

func (i Index) String() string {
	if !i.Set {
		return "null"
	}
	return strconv.Itoa(i.Value)
}

// MarshalJSON implements json.Marshaler.
func (i Index) MarshalJSON() ([]byte, error) {
	if !i.Set {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, int64(i.Value), 10), nil
}

// UnmarshalJSON implements json.Unmarshaler. Integral floats within the int64
// range are accepted; fractional or out-of-range ones and non-numeric strings
// are not.
func (i *Index) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	switch {
	case raw == "null":
		*i = Index{}
		return nil
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := ParseIndex(s)
		if err != nil {
			return err
		}
		*i = v
		return nil
	}

	if n, err := strconv.Atoi(raw); err == nil {
		*i = Int(n)
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return &NumberError{Input: raw}
	}
	*i = Int(int(f))
	return nil
}
