package rdio

import (
	"net/url"
	"strconv"
	"strings"
)

// Arg is one positional argument of an API call, already rendered to its
// wire form. The zero Arg is "not supplied" and never reaches the request.
type Arg struct {
	value   string
	present bool
}

// Unset is the absent argument.
var Unset = Arg{}

// StringArg returns a supplied string argument.
func StringArg(s string) Arg {
	return Arg{value: s, present: true}
}

// IntArg returns a supplied integer argument.
func IntArg(n int) Arg {
	return Arg{value: strconv.Itoa(n), present: true}
}

// BoolArg returns a supplied boolean argument, sent as "true" or "false".
func BoolArg(b bool) Arg {
	return Arg{value: strconv.FormatBool(b), present: true}
}

// NonEmpty returns StringArg(s), or Unset when s is empty.
func NonEmpty(s string) Arg {
	if s == "" {
		return Unset
	}
	return StringArg(s)
}

// OptString returns StringArg(*s), or Unset when s is nil.
func OptString(s *string) Arg {
	if s == nil {
		return Unset
	}
	return StringArg(*s)
}

// OptInt returns IntArg(*n), or Unset when n is nil.
func OptInt(n *int) Arg {
	if n == nil {
		return Unset
	}
	return IntArg(*n)
}

// OptBool returns BoolArg(*b), or Unset when b is nil.
func OptBool(b *bool) Arg {
	if b == nil {
		return Unset
	}
	return BoolArg(*b)
}

// ListArg joins values with commas. A nil slice is Unset; an empty,
// non-nil slice is sent as the empty string.
func ListArg[T ~string](values []T) Arg {
	if values == nil {
		return Unset
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return StringArg(strings.Join(parts, ","))
}

// IntListArg joins integer values with commas. A nil slice is Unset.
func IntListArg[T ~int](values []T) Arg {
	if values == nil {
		return Unset
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(int(v))
	}
	return StringArg(strings.Join(parts, ","))
}

// IsSet reports whether the argument was supplied.
func (a Arg) IsSet() bool {
	return a.present
}

// String returns the wire value.
func (a Arg) String() string {
	return a.value
}

// Params is the ordered parameter map of one API call. The method name is
// always the first entry.
type Params struct {
	names  []string
	values map[string]string
}

// MethodParam is the name of the parameter that carries the API method.
const MethodParam = "method"

// BuildParams maps positional arguments onto their declared wire names.
//
// It walks names and args in parallel, stops at the shorter of the two and
// skips arguments that were not supplied. No other conversion happens here:
// list-valued arguments must already be joined (see ListArg).
//
// Example:
//
//	p := rdio.BuildParams("getActivityStream",
//	    []string{"user", "scope", "count"},
//	    rdio.StringArg("s1"), rdio.StringArg("everyone"), rdio.Unset)
//	// p.Map() == {"method": "getActivityStream", "user": "s1", "scope": "everyone"}
func BuildParams(method string, names []string, args ...Arg) *Params {
	p := &Params{
		names:  []string{MethodParam},
		values: map[string]string{MethodParam: method},
	}

	n := min(len(names), len(args))
	for i := 0; i < n; i++ {
		if !args[i].present {
			continue
		}
		p.set(names[i], args[i].value)
	}

	return p
}

func (p *Params) set(name, value string) {
	if _, ok := p.values[name]; !ok {
		p.names = append(p.names, name)
	}
	p.values[name] = value
}

// Method returns the API method name.
func (p *Params) Method() string {
	return p.values[MethodParam]
}

// Get returns the value of a parameter and whether it is present.
func (p *Params) Get(name string) (string, bool) {
	v, ok := p.values[name]
	return v, ok
}

// Names returns the parameter names in insertion order.
func (p *Params) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Len returns the number of parameters, including the method.
func (p *Params) Len() int {
	return len(p.names)
}

// Map returns a copy of the parameters as a plain map.
func (p *Params) Map() map[string]string {
	out := make(map[string]string, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

// Values returns the parameters as form values for a POST body.
func (p *Params) Values() url.Values {
	form := make(url.Values, len(p.names))
	for _, name := range p.names {
		form.Set(name, p.values[name])
	}
	return form
}

// Encode returns the form-encoded body, keeping the method first.
func (p *Params) Encode() string {
	var b strings.Builder
	for i, name := range p.names {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.values[name]))
	}
	return b.String()
}
