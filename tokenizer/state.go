package tokenizer

import "fmt"

// State is a scanner state.
type State uint8

const (
	Plain State = iota
	InQuote
	InValue
	InValueQuote

	numStates = iota
)

var stateNames = [numStates]string{"Plain", "InQuote", "InValue", "InValueQuote"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Class is a character class relative to a delimiter.
type Class uint8

const (
	Other Class = iota
	Quote
	Equals
	Semicolon
	Delim
	// EqualsDelim is '=' when it is also the delimiter.
	EqualsDelim
	// SemicolonDelim is ';' when it is also the delimiter.
	SemicolonDelim

	numClasses = iota
)

var classNames = [numClasses]string{
	"Other", "Quote", "Equals", "Semicolon", "Delim", "EqualsDelim", "SemicolonDelim",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}

// Classify maps r to its class for the delimiter delim.
func Classify(r, delim rune) Class {
	switch r {
	case '"':
		return Quote
	case '=':
		if r == delim {
			return EqualsDelim
		}
		return Equals
	case ';':
		if r == delim {
			return SemicolonDelim
		}
		return Semicolon
	case delim:
		return Delim
	default:
		return Other
	}
}

type transition struct {
	next  State
	split bool
}

// rule holds the transition for a (state, class) pair.
// Guarded rules take dated when the date exception holds and plain otherwise.
type rule struct {
	plain   transition
	dated   transition
	guarded bool
}

func keep(s State) rule  { return rule{plain: transition{next: s}} }
func split(s State) rule { return rule{plain: transition{next: s, split: true}} }

// datedOr protects the delimiter when it follows a weekday abbreviation.
func datedOr(r rule) rule {
	r.dated = transition{next: InValue}
	r.guarded = true
	return r
}

var table = [numStates][numClasses]rule{
	Plain: {
		Other:          keep(Plain),
		Quote:          keep(InQuote),
		Equals:         keep(InValue),
		Semicolon:      keep(Plain),
		Delim:          split(Plain),
		EqualsDelim:    datedOr(split(Plain)),
		SemicolonDelim: split(Plain),
	},
	InValue: {
		Other:          keep(InValue),
		Quote:          keep(InValueQuote),
		Equals:         keep(InValue),
		Semicolon:      keep(Plain),
		Delim:          datedOr(split(Plain)),
		EqualsDelim:    datedOr(split(Plain)),
		SemicolonDelim: split(Plain),
	},
	InQuote: {
		Other:          keep(InQuote),
		Quote:          keep(Plain),
		Equals:         keep(InQuote),
		Semicolon:      keep(InQuote),
		Delim:          keep(InQuote),
		EqualsDelim:    keep(InQuote),
		SemicolonDelim: keep(InQuote),
	},
	InValueQuote: {
		Other:          keep(InValueQuote),
		Quote:          keep(Plain),
		Equals:         keep(InValueQuote),
		Semicolon:      keep(InValueQuote),
		Delim:          keep(InValueQuote),
		EqualsDelim:    keep(InValueQuote),
		SemicolonDelim: keep(InValueQuote),
	},
}

// Next returns the state following s on a character of class c and
// reports whether that character ends the current field.
// The dated flag tells whether the date exception holds at this position;
// it only matters for delimiters inside a value.
func Next(s State, c Class, dated bool) (next State, isSplit bool) {
	if s >= numStates || c >= numClasses {
		return s, false
	}
	r := table[s][c]
	if r.guarded && dated {
		return r.dated.next, r.dated.split
	}
	return r.plain.next, r.plain.split
}

// Guarded reports whether the transition for (s, c) depends on the date exception.
func Guarded(s State, c Class) bool {
	if s >= numStates || c >= numClasses {
		return false
	}
	return table[s][c].guarded
}

// States returns all scanner states.
func States() []State { return []State{Plain, InQuote, InValue, InValueQuote} }

// Classes returns all character classes.
func Classes() []Class {
	return []Class{Other, Quote, Equals, Semicolon, Delim, EqualsDelim, SemicolonDelim}
}
