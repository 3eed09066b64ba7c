package textpos

import "testing"

func TestSnippetClipsAtBoundaries(t *testing.T) {
	text := []rune("short")
	for o := 0; o < len(text); o++ {
		got := Snippet(text, o, DefaultRadius)
		if got != "short" {
			t.Fatalf("Snippet(offset=%d) = %q, want full text", o, got)
		}
	}
}

func TestSnippetWindow(t *testing.T) {
	text := []rune("0123456789")
	cases := []struct {
		offset, radius int
		want           string
	}{
		{5, 2, "34567"},
		{0, 2, "012"},
		{9, 2, "789"},
		{5, 0, "5"},
	}
	for _, c := range cases {
		if got := Snippet(text, c.offset, c.radius); got != c.want {
			t.Fatalf("Snippet(%d, %d) = %q, want %q", c.offset, c.radius, got, c.want)
		}
	}
}

func TestSnippetEscapesNewlines(t *testing.T) {
	text := []rune("a\r\nb\nc")
	got := Snippet(text, 3, DefaultRadius)
	want := `a\r\nb\nc`
	if got != want {
		t.Fatalf("Snippet = %q, want %q", got, want)
	}
}

func TestSnippetNeverPanicsNearBoundaries(t *testing.T) {
	text := []rune("ab")
	for o := 0; o <= len(text); o++ {
		for r := 0; r < 4; r++ {
			_ = Snippet(text, o, r)
		}
	}
	// empty text, offset 0
	if got := Snippet(nil, 0, DefaultRadius); got != "" {
		t.Fatalf("Snippet on empty text = %q, want empty", got)
	}
}
