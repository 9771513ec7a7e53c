package webcams

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cast"
)

// Params is an ordered mapping of query parameter names to scalar values.
//
// Values are rendered to text when they are set. Setting a key that is
// already present replaces its value but keeps its original position.
type Params struct {
	keys   []string
	values map[string]string
}

// NewParams returns an empty parameter mapping
func NewParams() *Params {
	return &Params{values: make(map[string]string)}
}

// Set assigns value to key and returns p for chaining.
func (p *Params) Set(key string, value any) *Params {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = formatScalar(value)
	return p
}

// Get returns the rendered value for key
func (p *Params) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p.values[key]
	return v, ok
}

// Keys returns the parameter names in insertion order
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Len returns the number of parameters
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Merge copies every parameter of other into p. Values from other win.
func (p *Params) Merge(other *Params) *Params {
	if other == nil {
		return p
	}
	for _, key := range other.keys {
		p.Set(key, other.values[key])
	}
	return p
}

// Clone returns an independent copy of p
func (p *Params) Clone() *Params {
	return NewParams().Merge(p)
}

// Encode renders the parameters as a URL query string in insertion order.
func (p *Params) Encode() string {
	if p.Len() == 0 {
		return ""
	}

	var b strings.Builder
	for i, key := range p.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.values[key]))
	}
	return b.String()
}

// String implements fmt.Stringer
func (p *Params) String() string {
	return p.Encode()
}

// formatScalar renders a parameter value the way the API expects it.
// Booleans are sent as 1/0 and nil as an empty string.
func formatScalar(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "1"
		}
		return "0"
	}

	s, err := cast.ToStringE(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return s
}
