package header

//go:generate go tool errtrace -w .

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/hdrkit/internal/errorutil"
	"github.com/ghettovoice/hdrkit/internal/util"
)

// Normalize lowercases name and replaces '-' with '_'.
// The result is suitable as a lookup key for header names.
func Normalize(name string) string {
	return strings.ReplaceAll(util.LCase(name), "-", "_")
}

// matchKey folds name so that "Content-Type", "content_type" and
// "ContentType" compare equal.
func matchKey(name string) string {
	return strings.ReplaceAll(Normalize(name), "_", "")
}

// TypeToName derives the canonical wire name of t from its short identifier.
// A single leading and a single trailing '_' are removed, then a '-' is
// inserted before every upper case letter except the first one:
//
//	header.ContentType -> Content-Type
//	header.From_       -> From
func TypeToName(t *Type) string { return IDToName(t.ShortID()) }

// IDToName is like [TypeToName] but takes a type identifier,
// qualified or not.
func IDToName(id string) string {
	if i := strings.LastIndexByte(id, '.'); i >= 0 {
		id = id[i+1:]
	}
	id = strings.TrimSuffix(id, "_")
	id = strings.TrimPrefix(id, "_")

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for _, r := range id {
		if unicode.IsUpper(r) && sb.Len() > 0 {
			sb.WriteByte('-')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// NameToType finds the type below root whose wire name matches name.
// Names are compared ignoring case, '-' and '_'.
//
// Types are visited in depth-first pre-order and the first match wins,
// so names must be unique within the hierarchy for the result to be
// meaningful. The root itself is never returned.
// If nothing matches, an error wrapping [ErrNotFound] is returned.
func NameToType(name string, root *Type) (*Type, error) {
	return errtrace.Wrap2(root.Lookup(name))
}

// Lookup is like [NameToType] with t as the root.
func (t *Type) Lookup(name string) (*Type, error) {
	if sub, ok := t.nameIndex()[matchKey(name)]; ok {
		return sub, nil
	}
	return nil, errtrace.Wrap(errorutil.NewNotFoundError("no header type matches %q", name))
}

func (t *Type) nameIndex() map[string]*Type {
	if t == nil {
		return nil
	}
	if idx := t.index.Load(); idx != nil {
		return *idx
	}

	idx := make(map[string]*Type)
	for sub := range t.Descendants() {
		k := matchKey(TypeToName(sub))
		if _, ok := idx[k]; !ok {
			idx[k] = sub
		}
	}
	t.index.Store(&idx)
	return idx
}

// Prettify formats a header name for display: '_' becomes '-' and
// every '-' separated segment is capitalized.
//
//	x-hEllo-wORLD -> X-Hello-World
//	content_type  -> Content-Type
//
// It is purely cosmetic and is never used for matching.
func Prettify(name string) string {
	parts := strings.Split(strings.ReplaceAll(name, "_", "-"), "-")
	for i, p := range parts {
		parts[i] = capitalize(p)
	}
	return strings.Join(parts, "-")
}

func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToTitle(r)) + util.LCase(s[n:])
}
