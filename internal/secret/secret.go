// Package secret provides a string wrapper for credentials that must never
// show up in logs, error messages or serialized output.
//
// A String prints as "[REDACTED]" under every fmt verb, under log/slog and
// under encoding/json. The only way to get the value back is Reveal, which
// makes every read of the secret explicit at the call site.
package secret

import (
	"fmt"
	"log/slog"
)

const redacted = "[REDACTED]"

// String holds a sensitive value. The zero value is an empty secret.
type String struct {
	v string
}

// New wraps s.
func New(s string) String {
	return String{v: s}
}

// FromBytes copies b into a String and zeroes b.
func FromBytes(b []byte) String {
	s := String{v: string(b)}
	Wipe(b)
	return s
}

// Reveal returns the wrapped value.
func (s String) Reveal() string {
	return s.v
}

// IsEmpty reports whether no value is held.
func (s String) IsEmpty() bool {
	return s.v == ""
}

func (s String) String() string {
	return redacted
}

func (s String) GoString() string {
	return "secret.String(" + redacted + ")"
}

// Format covers verbs that would otherwise bypass String, such as %x and %q.
func (s String) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('#') {
		_, _ = fmt.Fprint(f, s.GoString())
		return
	}
	_, _ = fmt.Fprint(f, redacted)
}

func (s String) LogValue() slog.Value {
	return slog.StringValue(redacted)
}

func (s String) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

func (s String) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}

// Wipe overwrites b with zeros. A nil slice is a no-op.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
