package csvutil

import "strings"

// Escape makes a single value safe as a CSV cell. Values containing a double
// quote, comma, carriage return or newline are wrapped in double quotes with
// internal quotes doubled; anything else passes through unchanged.
func Escape(s string) string {
    if !strings.ContainsAny(s, "\",\r\n") {
        return s
    }
    return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Line joins the escaped fields into one CSV record, without a trailing newline.
func Line(fields []string) string {
    escaped := make([]string, len(fields))
    for i, f := range fields {
        escaped[i] = Escape(f)
    }
    return strings.Join(escaped, ",")
}
