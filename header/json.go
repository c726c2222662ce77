package header

import (
	"encoding/json"

	"braces.dev/errtrace"

	"github.com/ghettovoice/hdrkit/internal/errorutil"
)

type headerData struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ToJSON encodes the headers as a JSON array of {"name":"...","value":"..."} objects.
func ToJSON(hs Headers) ([]byte, error) {
	data := make([]headerData, 0, len(hs))
	for _, hdr := range hs {
		if hdr == nil {
			continue
		}
		data = append(data, headerData{Name: hdr.Name, Value: hdr.Value})
	}
	return errtrace.Wrap2(json.Marshal(data))
}

// FromJSON decodes headers produced by [ToJSON].
// Values are taken as already decoded, so FromJSON(ToJSON(hs)) yields hs
// for headers built with the same options.
func FromJSON(b []byte, opts ...ParseOption) (Headers, error) {
	var data []headerData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}

	pairs := make([]Pair, 0, len(data))
	for i, d := range data {
		if d.Name == "" {
			return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("header #%d has no name", i))
		}
		pairs = append(pairs, Pair{Name: d.Name, Value: d.Value})
	}
	return build(pairs, newParseOptions(opts)), nil
}
