package header

//go:generate go tool mockgen -package decodermock -destination ../internal/testutil/decodermock/decoder.go . WordDecoder

import (
	"io"
	"mime"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

// Pair is a raw header line split into name and value.
type Pair struct {
	Name  string
	Value string
}

// WordDecoder decodes RFC 2047 encoded words in a header value.
// [mime.WordDecoder] implements it.
type WordDecoder interface {
	DecodeHeader(header string) (string, error)
}

// DefaultDecoder is the decoder used by [DecodeFragments].
// Charsets unknown to the mime package are looked up in the WHATWG encoding index,
// and unknown ones are read as UTF-8.
var DefaultDecoder WordDecoder = &mime.WordDecoder{CharsetReader: charsetReader}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return input, nil
	}
	return enc.NewDecoder().Reader(input), nil
}

// DecodeFragments decodes RFC 2047 encoded words in pair values with [DefaultDecoder]:
//
//	DecodeFragments([]Pair{{"Subject", "=?iso-8859-1?q?p=F6stal?="}})
//	// [{Subject pöstal}]
func DecodeFragments(pairs []Pair) []Pair {
	return DecodeFragmentsWith(DefaultDecoder, pairs)
}

// DecodeFragmentsWith is like [DecodeFragments] but uses dec.
// Values dec fails to decode are kept as is. Invalid UTF-8 sequences
// are dropped from the results. The input slice is not modified.
func DecodeFragmentsWith(dec WordDecoder, pairs []Pair) []Pair {
	if pairs == nil {
		return nil
	}
	if dec == nil {
		dec = DefaultDecoder
	}

	out := make([]Pair, len(pairs))
	for i, p := range pairs {
		v := p.Value
		if strings.Contains(v, "=?") {
			if dv, err := dec.DecodeHeader(v); err == nil {
				v = dv
			}
		}
		out[i] = Pair{Name: p.Name, Value: strings.ToValidUTF8(v, "")}
	}
	return out
}
