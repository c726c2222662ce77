package header

import (
	"io"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/hdrkit/internal/ioutil"
	"github.com/ghettovoice/hdrkit/internal/util"
)

// Headers is an ordered list of headers.
type Headers []*Header

// Get returns all headers named name, compared ignoring case, '-' and '_'.
func (hs Headers) Get(name string) Headers {
	k := matchKey(name)
	var out Headers
	for _, hdr := range hs {
		if hdr != nil && matchKey(hdr.Name) == k {
			out = append(out, hdr)
		}
	}
	return out
}

// First returns the first header named name.
func (hs Headers) First(name string) (*Header, bool) {
	k := matchKey(name)
	for _, hdr := range hs {
		if hdr != nil && matchKey(hdr.Name) == k {
			return hdr, true
		}
	}
	return nil, false
}

// Has reports whether there is a header named name.
func (hs Headers) Has(name string) bool {
	_, ok := hs.First(name)
	return ok
}

// OfKind returns the headers whose type has kind k.
func (hs Headers) OfKind(k Kind) Headers {
	var out Headers
	for _, hdr := range hs {
		if hdr != nil && hdr.Kind() == k {
			out = append(out, hdr)
		}
	}
	return out
}

// Names returns the distinct canonic names in order of first appearance.
func (hs Headers) Names() []string {
	seen := make(map[string]bool, len(hs))
	var names []string
	for _, hdr := range hs {
		if hdr == nil {
			continue
		}
		if k := matchKey(hdr.Name); !seen[k] {
			seen[k] = true
			names = append(names, hdr.CanonicName())
		}
	}
	return names
}

// RenderTo writes all headers to w, each one terminated with CRLF.
func (hs Headers) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	for _, hdr := range hs {
		if hdr == nil {
			continue
		}
		cw.Call(hdr.RenderTo).Fprint("\r\n")
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns all headers in wire form.
func (hs Headers) Render() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hs.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// Clone returns a deep copy of the list.
func (hs Headers) Clone() Headers {
	if hs == nil {
		return nil
	}
	hs2 := slices.Clone(hs)
	for i := range hs2 {
		hs2[i] = hs2[i].Clone()
	}
	return hs2
}
