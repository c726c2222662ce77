// Package tokenizer splits structured header values into sub-fields.
//
// Header values such as attribute lists may carry the delimiter character in
// places where it does not separate fields: inside quoted strings, inside an
// attribute value and inside RFC 1123 dates following an abbreviated weekday:
//
//	fields, err := tokenizer.Split(`a="x;y"; expires=Mon, 01 Jan 2001 00:00:00 GMT; path=/`, ';')
//	// ["a=\"x;y\"", "expires=Mon, 01 Jan 2001 00:00:00 GMT", "path=/"]
//
// # State machine
//
// The scanner runs a four state machine over the input runes:
//
//	Plain         outside of quotes and values
//	InQuote       inside a quoted string opened in Plain
//	InValue       after a bare '=' until the next ';', closing quote or unprotected delimiter
//	InValueQuote  inside a quoted string opened in InValue
//
// Every rune is mapped to a [Class] and the pair (state, class) is looked up in
// a fixed transition table. The date exception is the only guarded transition:
// a delimiter inside a value preceded by one of Mon, Tue, Wed, Thu, Fri, Sat or
// Sun keeps the value open. The guard only applies past the third rune of the
// input, so a delimiter at rune index 3 or lower always splits.
//
// Quotes are kept in the produced fields; see header.Unquote to strip them.
// Malformed input never fails: an unbalanced quote or value simply stays open
// until the end of input and no further splits happen.
//
// [Machine] exports the same table as a [stateless.StateMachine], which is
// handy for rendering the graph.
package tokenizer
