package service

import "strconv"

// MaxExpirySeconds caps signed-URL lifetimes at 365 days.
const MaxExpirySeconds int64 = 31536000

// ResolveExpirySeconds picks the signed-URL lifetime from the raw
// expiresInSeconds / expiresInDays query values. Invalid, zero or negative
// values fall through to the next rule; the result is always positive and
// capped at MaxExpirySeconds.
func ResolveExpirySeconds(secondsParam, daysParam string) int64 {
    if secs, err := strconv.ParseInt(secondsParam, 10, 64); err == nil && secs > 0 {
        if secs > MaxExpirySeconds {
            return MaxExpirySeconds
        }
        return secs
    }

    if days, err := strconv.ParseInt(daysParam, 10, 64); err == nil && days > 0 {
        secs := days * 86400
        if secs > MaxExpirySeconds || secs/86400 != days {
            return MaxExpirySeconds
        }
        return secs
    }

    return MaxExpirySeconds
}
