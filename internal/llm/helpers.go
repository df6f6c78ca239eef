// In file: internal/llm/helpers.go

// Package llm turns a tool's instruction template and a user's input into one
// request against the Gemini API, and classifies what comes back.
package llm

import "strings"

// This file contains the stateless helpers used by the gateway.

// ComposePrompt joins an instruction template and the user's input. The
// template always comes first and the input is appended verbatim.
func ComposePrompt(template, input string) string {
	return template + promptSeparator + input
}

// credentialRoute says which client serves a call.
type credentialRoute int

const (
	routeNone credentialRoute = iota
	routeOverride
	routeDefault
)

// resolveCredential picks the key for a call. A non-blank override always wins
// and is never cached; otherwise the default key is used if there is one.
func resolveCredential(override, defaultKey string) (string, credentialRoute) {
	if key := strings.TrimSpace(override); key != "" {
		return key, routeOverride
	}
	if defaultKey != "" {
		return defaultKey, routeDefault
	}
	return "", routeNone
}
