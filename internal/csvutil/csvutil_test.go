package csvutil_test

import (
    "testing"

    "github.com/unclebandit/recruitbase-backend/internal/csvutil"
)

func TestEscape(t *testing.T) {
    cases := []struct {
        in   string
        want string
    }{
        {"", ""},
        {"plain", "plain"},
        {"with space", "with space"},
        {"O'Brien, Jr.", `"O'Brien, Jr."`},
        {`Say "hi"`, `"Say ""hi"""`},
        {"line1\nline2", "\"line1\nline2\""},
        {"line1\r\nline2", "\"line1\r\nline2\""},
        {`"`, `""""`},
        {",", `","`},
    }

    for _, c := range cases {
        if got := csvutil.Escape(c.in); got != c.want {
            t.Errorf("Escape(%q) = %q, want %q", c.in, got, c.want)
        }
    }
}

func TestLine(t *testing.T) {
    got := csvutil.Line([]string{"a", "b,c", "", `d"e`})
    want := `a,"b,c",,"d""e"`
    if got != want {
        t.Errorf("Line = %q, want %q", got, want)
    }
}
