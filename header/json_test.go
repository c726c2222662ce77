package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/hdrkit/header"
)

var typeComparer = cmp.Comparer(func(a, b *header.Type) bool { return a == b })

func TestToJSON(t *testing.T) {
	t.Parallel()

	hs := mustParse(t, "Content-Type: text/html\nAccept: a, b")
	got, err := header.ToJSON(hs)
	if err != nil {
		t.Fatalf("header.ToJSON() error = %v, want nil", err)
	}

	want := `[{"name":"Content-Type","value":"text/html"},{"name":"Accept","value":"a"},{"name":"Accept","value":"b"}]`
	if string(got) != want {
		t.Errorf("header.ToJSON() = %s, want %s", got, want)
	}
}

func TestFromJSON(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		data    string
		want    []hdrSummary
		wantErr error
	}{
		{"empty", "[]", nil, nil},
		{"null", "null", nil, nil},
		{"malformed", "{", nil, header.ErrInvalidArgument},
		{"no name", `[{"name":"","value":"x"}]`, nil, header.ErrInvalidArgument},
		{
			"list entries",
			`[{"name":"Vary","value":"Accept, Origin"},{"name":"Subject","value":"=?utf-8?q?x?="}]`,
			[]hdrSummary{
				{"Vary", header.KindVary, "Accept"},
				{"Vary", header.KindVary, "Origin"},
				{"Subject", header.KindCustom, "=?utf-8?q?x?="},
			},
			nil,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := header.FromJSON([]byte(c.data))
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("header.FromJSON(%s) error = %v, want %v\ndiff (-got +want):\n%v", c.data, err, c.wantErr, diff)
			}
			if diff := cmp.Diff(summarize(got), c.want); diff != "" {
				t.Errorf("header.FromJSON(%s) = %v, want %v\ndiff (-got +want):\n%v", c.data, summarize(got), c.want, diff)
			}
		})
	}
}

func FuzzParseJSONRoundTrip(f *testing.F) {
	f.Add("Content-Type: text/html; charset=\"utf-8\"\r\nAccept: a, b;q=0.1\r\n")
	f.Add("Set-Cookie: id=1; Expires=Mon, 01 Jan 2001 00:00:00 GMT\nSubject: =?utf-8?q?caf=C3=A9?=")
	f.Add("HTTP/1.1 200 OK\nIf-Match: \"x,y\", W/\"z\"\n X-Folded: yes")
	f.Add("Vary: ,,\nAllow:")

	f.Fuzz(func(t *testing.T, raw string) {
		hs, err := header.Parse(raw)
		if err != nil {
			return
		}

		data, err := header.ToJSON(hs)
		if err != nil {
			t.Fatalf("header.ToJSON() error = %v, want nil", err)
		}
		got, err := header.FromJSON(data)
		if err != nil {
			t.Fatalf("header.FromJSON(%s) error = %v, want nil", data, err)
		}
		if diff := cmp.Diff(got, hs, typeComparer, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("header.FromJSON(header.ToJSON(hs)) differs from hs\ndiff (-got +want):\n%v", diff)
		}
	})
}
