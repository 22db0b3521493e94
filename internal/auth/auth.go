package auth

// Authorizer gates the export endpoints behind a shared secret.
// In development mode the check is skipped entirely.
type Authorizer struct {
    DevMode bool
    Secret  string
}

func NewAuthorizer(devMode bool, secret string) *Authorizer {
    return &Authorizer{DevMode: devMode, Secret: secret}
}

// Authorize reports whether the supplied secret grants access. A missing
// configured secret always denies outside development mode.
func (a *Authorizer) Authorize(supplied string) bool {
    if a.DevMode {
        return true
    }
    if a.Secret == "" {
        return false
    }
    return supplied == a.Secret
}
