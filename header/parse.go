package header

import (
	"log/slog"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/hdrkit/internal/errorutil"
	"github.com/ghettovoice/hdrkit/internal/log"
	"github.com/ghettovoice/hdrkit/internal/util"
	"github.com/ghettovoice/hdrkit/tokenizer"
)

// ParseOption configures [Parse] and [FromJSON].
type ParseOption func(*parseOptions)

type parseOptions struct {
	root    *Type
	logger  *slog.Logger
	decoder WordDecoder
}

// WithRoot sets the type hierarchy header names are resolved against.
// Defaults to [Root].
func WithRoot(root *Type) ParseOption {
	return func(o *parseOptions) {
		if root != nil {
			o.root = root
		}
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *slog.Logger) ParseOption {
	return func(o *parseOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithDecoder sets the encoded-word decoder. Defaults to [DefaultDecoder].
func WithDecoder(dec WordDecoder) ParseOption {
	return func(o *parseOptions) {
		if dec != nil {
			o.decoder = dec
		}
	}
}

func newParseOptions(opts []ParseOption) *parseOptions {
	o := &parseOptions{
		root:    Root,
		logger:  log.Noop,
		decoder: DefaultDecoder,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Parse parses a block of header lines.
//
// Lines are separated by LF with an optional CR. Lines starting with a space or
// a tab continue the previous header. A leading request or status line and other
// lines that do not look like "Name: value" are skipped, and the first empty line
// after a header ends the block. Encoded words are decoded with [DecodeFragmentsWith].
//
// Each name is resolved with [NameToType]; names without a match get the root type.
// Values of list types are split on ',' and every non-empty entry becomes its own header.
//
// Blank input yields no headers. Non-blank input without a single header line
// fails with an error wrapping [ErrInvalidArgument].
func Parse(raw string, opts ...ParseOption) (Headers, error) {
	o := newParseOptions(opts)

	pairs := splitLines(raw, o.logger)
	if len(pairs) == 0 {
		if util.TrimSP(raw) == "" {
			return nil, nil
		}
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(
			"no header lines in %q", util.Ellipsis(raw, 32),
		))
	}
	return build(DecodeFragmentsWith(o.decoder, pairs), o), nil
}

func splitLines(raw string, logger *slog.Logger) []Pair {
	var pairs []Pair
	for i, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if util.TrimSP(line) == "" {
			if len(pairs) > 0 {
				break
			}
			continue
		}

		if line[0] == ' ' || line[0] == '\t' {
			if len(pairs) == 0 {
				logger.Debug("skip continuation line without header", "line", i+1)
				continue
			}
			last := &pairs[len(pairs)-1]
			last.Value = util.TrimSP(last.Value + " " + util.TrimSP(line))
			continue
		}

		name, value, ok := strings.Cut(line, ":")
		name = strings.ToValidUTF8(util.TrimSP(name), "")
		if !ok || name == "" || strings.ContainsAny(name, " \t") {
			logger.Debug("skip non-header line", "line", i+1, "text", log.StringValue(util.Ellipsis(line, 64)))
			continue
		}
		pairs = append(pairs, Pair{Name: name, Value: util.TrimSP(value)})
	}
	return pairs
}

func build(pairs []Pair, o *parseOptions) Headers {
	hs := make(Headers, 0, len(pairs))
	for _, p := range pairs {
		typ, err := NameToType(p.Name, o.root)
		if err != nil {
			o.logger.Debug("unknown header name, use generic type",
				"name", p.Name,
				"root", o.root,
				"error", err,
			)
			typ = o.root
		}

		if !typ.IsList() {
			hs = append(hs, NewHeader(p.Name, p.Value, typ))
			continue
		}

		n := len(hs)
		for _, entry := range tokenizer.MustSplit(p.Value, ',') {
			if entry != "" {
				hs = append(hs, NewHeader(p.Name, entry, typ))
			}
		}
		if len(hs) == n {
			hs = append(hs, NewHeader(p.Name, "", typ))
		}
	}
	return hs
}
