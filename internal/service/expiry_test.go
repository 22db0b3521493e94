package service_test

import (
    "testing"

    "github.com/unclebandit/recruitbase-backend/internal/service"
)

func TestResolveExpirySeconds(t *testing.T) {
    cases := []struct {
        name    string
        seconds string
        days    string
        want    int64
    }{
        {"explicit seconds", "100", "", 100},
        {"seconds capped", "999999999999", "", 31536000},
        {"days converted", "", "2", 172800},
        {"days capped", "", "400", 31536000},
        {"both absent", "", "", 31536000},
        {"negative seconds falls through to days", "-5", "3", 259200},
        {"zero seconds falls through to days", "0", "1", 86400},
        {"garbage seconds falls through to days", "soon", "1", 86400},
        {"garbage everywhere defaults", "soon", "later", 31536000},
        {"negative days defaults", "", "-1", 31536000},
    }

    for _, c := range cases {
        t.Run(c.name, func(t *testing.T) {
            got := service.ResolveExpirySeconds(c.seconds, c.days)
            if got != c.want {
                t.Errorf("ResolveExpirySeconds(%q, %q) = %d, want %d", c.seconds, c.days, got, c.want)
            }
        })
    }
}
