package orchestrator

import (
	"net/http"
	"strings"
)

// fallbackReason labels why a request abandoned the live path. The user-facing
// copy is nearly identical across reasons; the distinction exists for logs and
// metrics.
type fallbackReason string

const (
	reasonQuota       fallbackReason = "quota"
	reasonUpstream    fallbackReason = "upstream_error"
	reasonBadResponse fallbackReason = "bad_response"
	reasonTransport   fallbackReason = "transport"
)

// quotaSignals are the error-message fragments that mark a failure as a quota
// or API-key limitation rather than a generic upstream error.
var quotaSignals = []string{
	"quota",
	"exceeded",
	"insufficient_quota",
	"rate limit",
	"API key",
}

// isQuotaFailure reports whether a failed response should be classified as a
// quota/auth limitation.
func isQuotaFailure(status int, errText string) bool {
	if status == http.StatusTooManyRequests || status == http.StatusUnauthorized {
		return true
	}
	for _, signal := range quotaSignals {
		if strings.Contains(errText, signal) {
			return true
		}
	}
	return false
}
