package domain

// Route is a typed internal destination resolved from a deep link by the
// routing table. Path is the canonical in-app path the route lands on;
// Params holds any captured pattern parameters (e.g. a promo code).
type Route struct {
	ID     string            `json:"id" yaml:"id"`
	Path   string            `json:"path" yaml:"path"`
	Params map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
}

// AuthCallback is the payload of an externally-issued authentication
// provider return trip. It is intercepted by the interpreter and handed to
// the external auth handler instead of being routed as a path change.
type AuthCallback struct {
	Provider string `json:"provider"`
	Payload  string `json:"payload,omitempty"`
}

// DeepLinkKind tags the variants of a parsed deep link.
type DeepLinkKind string

const (
	// DeepLinkNone means the input was not a deep link at all.
	DeepLinkNone DeepLinkKind = "none"
	// DeepLinkAuthCallback means the link is an auth provider return trip.
	DeepLinkAuthCallback DeepLinkKind = "auth_callback"
	// DeepLinkRoute means the link resolved to an internal route.
	DeepLinkRoute DeepLinkKind = "route"
	// DeepLinkUnrecognized means the link used a recognized scheme but no
	// route matched. Treated the same as no deep link by the engine.
	DeepLinkUnrecognized DeepLinkKind = "unrecognized"
)

// DeepLink is the tagged result of interpreting an opaque URI. Exactly one
// of Route and Callback is set, depending on Kind.
type DeepLink struct {
	Kind     DeepLinkKind
	Route    *Route
	Callback *AuthCallback
}

// NoDeepLink returns the "not a deep link" result.
func NoDeepLink() DeepLink {
	return DeepLink{Kind: DeepLinkNone}
}

// UnrecognizedDeepLink returns the forward-compatible "ignore" result.
func UnrecognizedDeepLink() DeepLink {
	return DeepLink{Kind: DeepLinkUnrecognized}
}

// RouteDeepLink wraps a resolved internal route.
func RouteDeepLink(r Route) DeepLink {
	return DeepLink{Kind: DeepLinkRoute, Route: &r}
}

// AuthCallbackDeepLink wraps an intercepted provider callback.
func AuthCallbackDeepLink(provider, payload string) DeepLink {
	return DeepLink{
		Kind:     DeepLinkAuthCallback,
		Callback: &AuthCallback{Provider: provider, Payload: payload},
	}
}
