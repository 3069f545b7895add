package entity

import (
	"net/url"
	"strings"
)

// EndpointURL represents a fully-qualified Protect RPC endpoint URL. It is
// derived, never stored: callers rebuild it from current inputs on every use.
type EndpointURL string

// String returns the string representation of the EndpointURL.
func (e EndpointURL) String() string {
	return string(e)
}

// HintPreferences is the fixed set of transaction-detail categories the user
// consents to share with block builders. Field order matters: emitted hint
// parameters follow declaration order.
type HintPreferences struct {
	Calldata         bool `json:"calldata"`
	ContractAddress  bool `json:"contractAddress"`
	FunctionSelector bool `json:"functionSelector"`
	Logs             bool `json:"logs"`
	DefaultLogs      bool `json:"defaultLogs"`
	Hash             bool `json:"hash"`
}

// Hints returns the snake_case names of all enabled hints, in declaration
// order. An all-false preference set yields nil.
func (h HintPreferences) Hints() []string {
	var hints []string
	if h.Calldata {
		hints = append(hints, "calldata")
	}
	if h.ContractAddress {
		hints = append(hints, "contract_address")
	}
	if h.FunctionSelector {
		hints = append(hints, "function_selector")
	}
	if h.Logs {
		hints = append(hints, "logs")
	}
	if h.DefaultLogs {
		hints = append(hints, "default_logs")
	}
	if h.Hash {
		hints = append(hints, "hash")
	}
	return hints
}

// BuilderSelection carries the user's builder routing choice: either an
// ordered list of builder names or the fast-mode flag. Fast wins by
// precedence when both are set.
type BuilderSelection struct {
	Fast     bool     `json:"fast"`
	Builders []string `json:"builders,omitempty"`
}

// BuildEndpointURL maps a chain identity and the user's preferences to the
// Protect endpoint URL. Pure and total: no side effects, no error case.
//
// Fast mode appends the "fast" path segment and suppresses all builder
// parameters, even when a builder list was also supplied. Query parameters
// keep insertion order (hints first, then builders), so the query string is
// assembled by hand instead of through url.Values, which would sort keys.
func BuildEndpointURL(chain ChainID, hints HintPreferences, sel BuilderSelection) EndpointURL {
	u := url.URL{
		Scheme: "https",
		Host:   chain.RPCHost(),
		Path:   "/",
	}
	if sel.Fast {
		u.Path = "/fast"
	}

	var params []string
	for _, hint := range hints.Hints() {
		params = append(params, "hint="+url.QueryEscape(hint))
	}
	if !sel.Fast {
		for _, builder := range sel.Builders {
			params = append(params, "builder="+url.QueryEscape(strings.ToLower(builder)))
		}
	}
	u.RawQuery = strings.Join(params, "&")

	return EndpointURL(u.String())
}
