package auth

import (
	"strings"

	"github.com/restkit-go/restkit/restclient"
)

// challenges returns the WWW-Authenticate values on resp whose scheme equals
// scheme (case-insensitive), with the scheme token stripped.
func challenges(resp *restclient.Response, scheme string) []string {
	var out []string
	for _, value := range resp.Header.Values("WWW-Authenticate") {
		value = strings.TrimSpace(value)
		name, rest, _ := strings.Cut(value, " ")
		if strings.EqualFold(name, scheme) {
			out = append(out, strings.TrimSpace(rest))
		}
	}
	return out
}

// hasChallenge reports whether resp carries a challenge for scheme.
func hasChallenge(resp *restclient.Response, scheme string) bool {
	for _, value := range resp.Header.Values("WWW-Authenticate") {
		name, _, _ := strings.Cut(strings.TrimSpace(value), " ")
		if strings.EqualFold(name, scheme) {
			return true
		}
	}
	return false
}

// parseChallenge parses comma-separated key="value" challenge parameters
// into a map with lowercase keys and unquoted, trimmed values.
func parseChallenge(params string) map[string]string {
	out := make(map[string]string)
	for _, part := range splitParams(params) {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.Trim(strings.TrimSpace(value), `"`)
		out[key] = value
	}
	return out
}

// splitParams splits on top-level commas, leaving quoted strings intact.
func splitParams(s string) []string {
	var parts []string
	var b strings.Builder
	quoted := false
	for _, r := range s {
		switch {
		case r == '"':
			quoted = !quoted
			b.WriteRune(r)
		case r == ',' && !quoted:
			parts = append(parts, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	if strings.TrimSpace(b.String()) != "" {
		parts = append(parts, b.String())
	}
	return parts
}
