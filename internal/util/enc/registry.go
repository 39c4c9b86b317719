package enc

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	BaseXML = &BaseXMLEncoder{}
	Base32  = &Base32Encoder{}
	Base64  = &Base64Encoder{}
	Base85  = &Base85Encoder{}
	Base91  = &Base91Encoder{}
	Base128 = &Base128Encoder{}
	Raw     = &RawEncoder{}
)

// All lists the registered encoders, in the order they are reported.
var All = []Encoder{
	BaseXML,
	Base64,
	Base32,
	Base85,
	Base91,
	Base128,
	Raw,
}

// FromCode returns the encoder with the given one-letter code.
func FromCode(code byte) (Encoder, error) {
	for _, e := range All {
		if e.Code() == code {
			return e, nil
		}
	}
	return nil, errors.Errorf("unknown encoder code: %q", code)
}

// FromName returns the encoder with the given name. The match is case-insensitive and
// accepts the one-letter code as well.
func FromName(name string) (Encoder, error) {
	for _, e := range All {
		if strings.EqualFold(e.Name(), name) {
			return e, nil
		}
	}
	if len(name) == 1 {
		return FromCode(strings.ToUpper(name)[0])
	}
	return nil, errors.Errorf("unknown encoder: %v", name)
}

// Names returns the names of all registered encoders.
func Names() []string {
	names := make([]string, 0, len(All))
	for _, e := range All {
		names = append(names, e.Name())
	}
	return names
}

// Describe returns "Name(C)" for an encoder.
func Describe(e Encoder) string {
	if s, ok := e.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v(%v)", e.Name(), string(e.Code()))
}
