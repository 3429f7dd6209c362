package deeplink

import (
	"net/url"
	"strings"

	"github.com/Beep206/CyberVPN-sub013/pkg/domain"
)

const (
	// Scheme is the custom application URI scheme.
	Scheme = "cybervpn"
	// WebHost is the product's public web domain.
	WebHost = "cybervpn.app"
	// WebPrefix is the whitelisted deep-link prefix under WebHost.
	WebPrefix = "/app/"

	// authPrefix marks the distinguished identifier class of external auth
	// provider callbacks. These are intercepted, never routed as paths.
	authPrefix = "auth/"
)

// Interpreter parses opaque URIs against a routing table.
type Interpreter struct {
	table *Table
}

// NewInterpreter creates an interpreter over the given table. A nil table
// uses the built-in default.
func NewInterpreter(table *Table) *Interpreter {
	if table == nil {
		table = DefaultTable()
	}
	return &Interpreter{table: table}
}

// Table returns the interpreter's routing table.
func (i *Interpreter) Table() *Table {
	return i.table
}

// Parse interprets a raw URI. It is pure and total: any input that cannot
// be understood yields NoDeepLink or UnrecognizedDeepLink, never an error
// or panic.
func (i *Interpreter) Parse(raw string) domain.DeepLink {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.NoDeepLink()
	}

	u, err := url.Parse(raw)
	if err != nil {
		// Unparseable input under our scheme still counts as ours, so it
		// degrades to Unrecognized rather than falling through.
		if strings.HasPrefix(strings.ToLower(raw), Scheme+":") {
			return domain.UnrecognizedDeepLink()
		}
		return domain.NoDeepLink()
	}

	id, ok := i.routeID(u)
	if !ok {
		return domain.NoDeepLink()
	}
	if id == "" {
		return domain.UnrecognizedDeepLink()
	}

	if provider, isAuth := strings.CutPrefix(id, authPrefix); isAuth {
		if provider != "" && !strings.Contains(provider, "/") && i.table.Provider(provider) {
			return domain.AuthCallbackDeepLink(provider, u.RawQuery)
		}
		return domain.UnrecognizedDeepLink()
	}

	route, ok := i.table.Resolve(id)
	if !ok {
		return domain.UnrecognizedDeepLink()
	}
	return domain.RouteDeepLink(route)
}

// routeID extracts the route identifier from a parsed URI, or reports
// that the URI is not a deep link at all.
func (i *Interpreter) routeID(u *url.URL) (string, bool) {
	switch strings.ToLower(u.Scheme) {
	case Scheme:
		// cybervpn:plans (opaque form, no slashes) is tolerated.
		if u.Opaque != "" {
			return strings.Trim(u.Opaque, "/"), true
		}
		// cybervpn://plans, cybervpn://import/file: the first identifier
		// segment lands in the host position.
		id := u.Host
		if p := strings.Trim(u.Path, "/"); p != "" {
			if id == "" {
				id = p
			} else {
				id = id + "/" + p
			}
		}
		return id, true
	case "http", "https":
		if !strings.EqualFold(u.Host, WebHost) {
			return "", false
		}
		if !strings.HasPrefix(u.Path, WebPrefix) {
			return "", false
		}
		return strings.Trim(strings.TrimPrefix(u.Path, WebPrefix), "/"), true
	default:
		return "", false
	}
}
