// Package header maps header names to a hierarchy of header types and
// provides a light header object model on top of the [tokenizer] package.
//
// # Type hierarchy
//
// A [Type] is a node of a tree rooted at a type created with [NewRoot].
// Every type has a qualified identifier such as "header.ContentType", a [Kind]
// discriminant and an optional list flag. The package ships the builtin
// hierarchy [Root] with the common HTTP and MIME headers; [NewBuiltinRoot]
// returns a private copy that can be extended with [Type.Derive].
//
// # Naming
//
// [TypeToName] derives the wire name of a type from its short identifier:
//
//	header.ContentType         -> Content-Type
//	header.XContentTypeOptions -> X-Content-Type-Options
//	header.From_               -> From
//
// [NameToType] goes the other way. Names are compared ignoring case, '-' and
// '_', types are visited depth-first in derivation order and the first match
// wins. Keeping derived names unique within a hierarchy is up to the caller,
// the package does not detect collisions:
//
//	typ, err := header.NameToType("content-type", header.Root)
//	if errors.Is(err, header.ErrNotFound) {
//		// fall back to a generic representation
//	}
//
// [Prettify] formats names for display and [Normalize] builds lookup keys.
//
// # Parsing
//
// [Parse] turns a block of header lines into [Headers]. Encoded words are
// decoded with [DecodeFragments], names are resolved against a hierarchy and
// values are split into members with [tokenizer.Split]. Headers of list types
// such as Accept are split on ',' into one [Header] per entry:
//
//	hs, err := header.Parse("Content-Type: text/html; charset=\"utf-8\"\r\nAccept: text/html, */*;q=0.8\r\n")
//	ct, _ := hs.First("content-type")
//	charset, _ := ct.Param("charset") // utf-8
//
// [ToJSON] and [FromJSON] serialize headers as name/value pairs.
package header
