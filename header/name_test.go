package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/hdrkit/header"
)

func TestTypeToName(t *testing.T) {
	t.Parallel()

	root := header.NewRoot("test.Root")
	cases := []struct {
		id   string
		want string
	}{
		{"pkg.ContentType", "Content-Type"},
		{"pkg.XXssProtection", "X-Xss-Protection"},
		{"pkg.From_", "From"},
		{"pkg._Reserved_", "Reserved"},
		{"pkg.__X__", "_-X_"},
		{"pkg.ETag", "E-Tag"},
		{"pkg.Dnt", "Dnt"},
		{"Host", "Host"},
		{"a.b.c.UserAgent", "User-Agent"},
		{"pkg._", ""},
	}

	for _, c := range cases {
		typ := root.Derive(c.id)
		t.Run(c.id, func(t *testing.T) {
			t.Parallel()

			if got := header.TypeToName(typ); got != c.want {
				t.Errorf("header.TypeToName(%q) = %q, want %q", c.id, got, c.want)
			}
			if got := header.IDToName(c.id); got != c.want {
				t.Errorf("header.IDToName(%q) = %q, want %q", c.id, got, c.want)
			}
		})
	}

	if got := header.TypeToName(nil); got != "" {
		t.Errorf("header.TypeToName(nil) = %q, want \"\"", got)
	}
}

func TestNameToType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		wantKind header.Kind
		wantErr  error
	}{
		{"content-type", header.KindContentType, nil},
		{"CONTENT_TYPE", header.KindContentType, nil},
		{"ContentType", header.KindContentType, nil},
		{"ETag", header.KindEtag, nil},
		{"www-authenticate", header.KindWwwAuthenticate, nil},
		{"Proxy-Authenticate", header.KindProxyAuthenticate, nil},
		{"if-none-match", header.KindIfNoneMatch, nil},
		{"last-modified", header.KindLastModified, nil},
		{"x-xss-protection", header.KindXXssProtection, nil},
		{"totally-unknown-header", 0, header.ErrNotFound},
		{"custom-header", 0, header.ErrNotFound},
		{"", 0, header.ErrNotFound},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := header.NameToType(c.name, header.Root)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("header.NameToType(%q, Root) error = %v, want %v\ndiff (-got +want):\n%v",
					c.name, err, c.wantErr, diff,
				)
			}
			if c.wantErr != nil {
				if got != nil {
					t.Errorf("header.NameToType(%q, Root) = %v, want nil", c.name, got)
				}
				return
			}
			if got.Kind() != c.wantKind {
				t.Errorf("header.NameToType(%q, Root).Kind() = %v, want %v", c.name, got.Kind(), c.wantKind)
			}
		})
	}
}

func TestNameToType_RoundTrip(t *testing.T) {
	t.Parallel()

	n := 0
	for typ := range header.Root.Descendants() {
		n++
		name := header.TypeToName(typ)
		got, err := header.NameToType(name, header.Root)
		if err != nil {
			t.Errorf("header.NameToType(%q, Root) error = %v, want nil", name, err)
			continue
		}
		if got != typ {
			t.Errorf("header.NameToType(%q, Root) = %v, want %v", name, got, typ)
		}
	}
	if n == 0 {
		t.Fatal("Root has no descendants")
	}
}

func TestNameToType_FirstMatchWins(t *testing.T) {
	t.Parallel()

	root := header.NewRoot("test.Root")
	nested := root.Derive("a.Parent").Derive("a.FooBar")
	root.Derive("b.Foo_Bar")

	got, err := header.NameToType("foo-bar", root)
	if err != nil {
		t.Fatalf("header.NameToType(\"foo-bar\", root) error = %v, want nil", err)
	}
	if got != nested {
		t.Errorf("header.NameToType(\"foo-bar\", root) = %v, want %v", got, nested)
	}
}

func TestNameToType_SubtreeOnly(t *testing.T) {
	t.Parallel()

	date, err := header.NameToType("date", header.Root)
	if err != nil {
		t.Fatalf("header.NameToType(\"date\", Root) error = %v, want nil", err)
	}

	if got, err := header.NameToType("expires", date); err != nil || got.Kind() != header.KindExpires {
		t.Errorf("header.NameToType(\"expires\", Date) = (%v, %v), want (header.Expires, nil)", got, err)
	}
	if _, err := header.NameToType("content-type", date); !cmp.Equal(err, header.ErrNotFound, cmpopts.EquateErrors()) {
		t.Errorf("header.NameToType(\"content-type\", Date) error = %v, want %v", err, header.ErrNotFound)
	}
}

func TestNameToType_NilRoot(t *testing.T) {
	t.Parallel()

	_, err := header.NameToType("content-type", nil)
	if diff := cmp.Diff(err, header.ErrNotFound, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("header.NameToType(\"content-type\", nil) error = %v, want %v\ndiff (-got +want):\n%v",
			err, header.ErrNotFound, diff,
		)
	}
}

func TestType_DeriveRefreshesLookups(t *testing.T) {
	t.Parallel()

	root := header.NewRoot("test.Root")
	child := root.Derive("test.Child")

	if _, err := root.Lookup("grand-child"); err == nil {
		t.Fatal("root.Lookup(\"grand-child\") error = nil, want not found")
	}

	grand := child.Derive("test.GrandChild", header.WithKind(header.KindCustom), header.AsList())
	got, err := root.Lookup("grand-child")
	if err != nil {
		t.Fatalf("root.Lookup(\"grand-child\") error = %v, want nil", err)
	}
	if got != grand {
		t.Errorf("root.Lookup(\"grand-child\") = %v, want %v", got, grand)
	}
	if !got.IsList() || got.Kind() != header.KindCustom || got.Parent() != child {
		t.Errorf("derived type = {list: %v, kind: %v, parent: %v}, want {true, CustomHeader, %v}",
			got.IsList(), got.Kind(), got.Parent(), child,
		)
	}
}

func TestType_Descendants(t *testing.T) {
	t.Parallel()

	root := header.NewRoot("test.Root")
	a := root.Derive("test.A")
	a.Derive("test.A1")
	a.Derive("test.A2")
	root.Derive("test.B").Derive("test.B1")

	var got []string
	for typ := range root.Descendants() {
		got = append(got, typ.ShortID())
	}
	want := []string{"A", "A1", "A2", "B", "B1"}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("root.Descendants() = %v, want %v\ndiff (-got +want):\n%v", got, want, diff)
	}

	var first []string
	for typ := range root.Descendants() {
		first = append(first, typ.ShortID())
		if len(first) == 2 {
			break
		}
	}
	if diff := cmp.Diff(first, want[:2]); diff != "" {
		t.Errorf("root.Descendants() with break = %v, want %v", first, want[:2])
	}

	if !root.IsRoot() || a.IsRoot() {
		t.Errorf("IsRoot() = (%v, %v), want (true, false)", root.IsRoot(), a.IsRoot())
	}
	if got := len(root.Subtypes()); got != 2 {
		t.Errorf("len(root.Subtypes()) = %d, want 2", got)
	}
}

func TestNewBuiltinRoot(t *testing.T) {
	t.Parallel()

	root := header.NewBuiltinRoot()
	if root == header.Root {
		t.Fatal("header.NewBuiltinRoot() returned the shared Root")
	}
	if root.ID() != header.RootID || root.Kind() != header.KindCustom {
		t.Errorf("header.NewBuiltinRoot() = {%q, %v}, want {%q, CustomHeader}", root.ID(), root.Kind(), header.RootID)
	}

	root.Derive("app.XRequestId")
	if _, err := header.Root.Lookup("x-request-id"); err == nil {
		t.Error("deriving from a builtin copy changed the shared Root")
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind header.Kind
		want string
	}{
		{header.KindCustom, "CustomHeader"},
		{header.KindExtension, "Extension"},
		{header.KindContentType, "ContentType"},
		{header.KindXXssProtection, "XXssProtection"},
		{header.Kind(999), "Kind(999)"},
	}

	for _, c := range cases {
		if got := c.kind.String(); got != c.want {
			t.Errorf("Kind(%d).String() = %q, want %q", uint16(c.kind), got, c.want)
		}
	}
}

func TestPrettify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"x-hEllo-wORLD", "X-Hello-World"},
		{"server", "Server"},
		{"contEnt-TYPE", "Content-Type"},
		{"content_type", "Content-Type"},
		{"a--b", "A--B"},
		{"élan-vital", "Élan-Vital"},
		{"", ""},
	}

	for _, c := range cases {
		if got := header.Prettify(c.in); got != c.want {
			t.Errorf("header.Prettify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"Content-Type", "content_type"},
		{"X_Custom-Header", "x_custom_header"},
		{"", ""},
	}

	for _, c := range cases {
		if got := header.Normalize(c.in); got != c.want {
			t.Errorf("header.Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
