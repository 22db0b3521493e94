package auth_test

import (
    "testing"

    "github.com/unclebandit/recruitbase-backend/internal/auth"
)

func TestAuthorizeDevMode(t *testing.T) {
    a := auth.NewAuthorizer(true, "")
    if !a.Authorize("") {
        t.Error("expected dev mode to authorize without a secret")
    }
    if !a.Authorize("anything") {
        t.Error("expected dev mode to authorize any secret")
    }
}

func TestAuthorizeNoConfiguredSecret(t *testing.T) {
    a := auth.NewAuthorizer(false, "")
    if a.Authorize("") || a.Authorize("guess") {
        t.Error("expected missing configured secret to always deny")
    }
}

func TestAuthorizeSharedSecret(t *testing.T) {
    a := auth.NewAuthorizer(false, "abc")
    if !a.Authorize("abc") {
        t.Error("expected matching secret to authorize")
    }
    if a.Authorize("ABC") {
        t.Error("expected comparison to be case-sensitive")
    }
    if a.Authorize("") || a.Authorize("abcd") {
        t.Error("expected wrong secret to deny")
    }
}
