package header

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/hdrkit/internal/util"
	"github.com/ghettovoice/hdrkit/tokenizer"
)

// Header is a single parsed header.
type Header struct {
	// Name is the header name as it appeared on the wire.
	Name string
	// Type is the matched type, or the hierarchy root when no type matched.
	Type *Type
	// Value is the decoded header value.
	Value string
	// Members are the ';' separated parts of Value, quotes kept.
	Members []string
	// Params holds the key=value members with unquoted values.
	Params Values
}

// NewHeader creates a header and splits its value into members and parameters.
func NewHeader(name, value string, typ *Type) *Header {
	hdr := &Header{
		Name:    name,
		Type:    typ,
		Value:   value,
		Members: tokenizer.MustSplit(value, ';'),
	}
	for _, m := range hdr.Members {
		k, v, ok := strings.Cut(m, "=")
		if !ok {
			continue
		}
		if k = util.TrimSP(k); k == "" {
			continue
		}
		if hdr.Params == nil {
			hdr.Params = make(Values)
		}
		hdr.Params.Append(k, Unquote(util.TrimSP(v)))
	}
	return hdr
}

// CanonicName returns the prettified header name.
func (hdr *Header) CanonicName() string {
	if hdr == nil {
		return ""
	}
	return Prettify(hdr.Name)
}

// Kind returns the kind of the header type.
func (hdr *Header) Kind() Kind {
	if hdr == nil {
		return KindCustom
	}
	return hdr.Type.Kind()
}

// Param returns the last value of the key parameter.
func (hdr *Header) Param(key string) (string, bool) {
	if hdr == nil {
		return "", false
	}
	return hdr.Params.Last(key)
}

// Has reports whether the header has a member equal to m or a parameter named m,
// ignoring case.
func (hdr *Header) Has(m string) bool {
	if hdr == nil {
		return false
	}
	if hdr.Params.Has(m) {
		return true
	}
	return slices.ContainsFunc(hdr.Members, func(s string) bool { return util.EqFold(s, m) })
}

// RenderTo writes the header in "Name: Value" form to w.
func (hdr *Header) RenderTo(w io.Writer) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(fmt.Fprint(w, hdr.CanonicName(), ": ", hdr.Value))
}

// Render returns the header in "Name: Value" form.
func (hdr *Header) Render() string {
	if hdr == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hdr.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

func (hdr *Header) String() string {
	if hdr == nil {
		return ""
	}
	return hdr.Value
}

func (hdr *Header) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			hdr.RenderTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		if f.Flag('+') {
			fmt.Fprint(f, strconv.Quote(hdr.Render()))
			return
		}
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods Header
		type Header hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Header)(hdr))
		return
	}
}

// Clone returns a deep copy of the header. The type is shared.
func (hdr *Header) Clone() *Header {
	if hdr == nil {
		return nil
	}
	hdr2 := *hdr
	hdr2.Members = slices.Clone(hdr.Members)
	hdr2.Params = hdr.Params.Clone()
	return &hdr2
}

// Equal reports whether val is a header with the same name, type and value.
// Names are compared ignoring case, '-' and '_'.
func (hdr *Header) Equal(val any) bool {
	var other *Header
	switch v := val.(type) {
	case Header:
		other = &v
	case *Header:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}

	return matchKey(hdr.Name) == matchKey(other.Name) &&
		hdr.Type == other.Type &&
		hdr.Value == other.Value
}
