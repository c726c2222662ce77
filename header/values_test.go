package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/hdrkit/header"
)

func TestValues(t *testing.T) {
	t.Parallel()

	vals := make(header.Values).
		Append("Q", "0.5").
		Append("q", "1").
		Set("Charset", "utf-8").
		Append("level", "1").
		Del("LEVEL")

	if got, want := vals.Get("q"), []string{"0.5", "1"}; !cmp.Equal(got, want) {
		t.Errorf("vals.Get(\"q\") = %v, want %v", got, want)
	}
	if got, ok := vals.First("Q"); !ok || got != "0.5" {
		t.Errorf("vals.First(\"Q\") = %q, %v, want \"0.5\", true", got, ok)
	}
	if got, ok := vals.Last("q"); !ok || got != "1" {
		t.Errorf("vals.Last(\"q\") = %q, %v, want \"1\", true", got, ok)
	}
	if !vals.Has("charset") {
		t.Error("vals.Has(\"charset\") = false, want true")
	}
	if vals.Has("level") {
		t.Error("vals.Has(\"level\") = true, want false")
	}
	if _, ok := vals.First("missing"); ok {
		t.Error("vals.First(\"missing\") ok = true, want false")
	}

	clone := vals.Clone()
	clone.Append("q", "2")
	if diff := cmp.Diff(vals.Get("q"), []string{"0.5", "1"}); diff != "" {
		t.Errorf("original changed after clone update\ndiff (-got +want):\n%v", diff)
	}
	if got := header.Values(nil).Clone(); got != nil {
		t.Errorf("Values(nil).Clone() = %v, want nil", got)
	}
}
