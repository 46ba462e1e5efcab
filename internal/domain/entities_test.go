package domain

import "testing"

func TestDecodeHTMLEntities(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "apostrophe",
			in:   "it&#39;s fine",
			want: "it's fine",
		},
		{
			name: "quotes",
			in:   "say &quot;hello&quot;",
			want: `say "hello"`,
		},
		{
			name: "ampersand",
			in:   "hello &amp; world",
			want: "hello & world",
		},
		{
			name: "angle brackets",
			in:   "&lt;b&gt;bold&lt;/b&gt;",
			want: "<b>bold</b>",
		},
		{
			name: "non-breaking space",
			in:   "a&nbsp;b",
			want: "a b",
		},
		{
			name: "double-encoded ampersand loses one layer",
			in:   "&amp;amp;",
			want: "&amp;",
		},
		{
			name: "plain text untouched",
			in:   "обычный текст без сущностей",
			want: "обычный текст без сущностей",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeHTMLEntities(tt.in); got != tt.want {
				t.Errorf("DecodeHTMLEntities(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeHTMLEntitiesIdempotentOnDecodedText(t *testing.T) {
	in := "it&#39;s &quot;fine&quot; &amp; dandy"
	once := DecodeHTMLEntities(in)
	twice := DecodeHTMLEntities(once)
	if once != twice {
		t.Errorf("second decode changed text: %q -> %q", once, twice)
	}
}
