package ratelimit

import (
	"strings"
)

// unlimited is returned for endpoints that are never rate limited.
var unlimited = EndpointConfig{Path: "/health", Method: "GET"}

// MatchEndpoint matches a request path and method to an endpoint configuration.
// Returns the matching EndpointConfig or nil if no match is found.
// Patterns match segment by segment with "*" standing for any one segment;
// a pattern ending in "/" also matches every path below it.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// Special case: health check endpoint is unlimited
	if path == unlimited.Path && method == unlimited.Method {
		cfg := unlimited
		return &cfg
	}

	// Full-length matches win over prefix matches
	for i := range configs {
		config := &configs[i]
		if config.Method == method && matchSegments(config.Path, path, false) {
			return config
		}
	}
	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") && matchSegments(config.Path, path, true) {
			return config
		}
	}

	// No match found
	return nil
}

func matchSegments(pattern, path string, prefix bool) bool {
	want := strings.Split(strings.Trim(pattern, "/"), "/")
	got := strings.Split(strings.Trim(path, "/"), "/")
	if prefix {
		if len(got) <= len(want) {
			return false
		}
		got = got[:len(want)]
	} else if len(got) != len(want) || strings.HasSuffix(pattern, "/") != strings.HasSuffix(path, "/") {
		return false
	}
	for i := range want {
		if want[i] != "*" && want[i] != got[i] {
			return false
		}
	}
	return true
}
