package deeplink

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Beep206/CyberVPN-sub013/pkg/domain"
)

// TableVersion is the routing table schema version this build understands.
const TableVersion = 1

// Entry is one row of the routing table: a route identifier pattern and
// the canonical internal path it resolves to. A pattern segment of the
// form {name} captures that segment as a parameter; the captured value is
// substituted for {name} in the path template.
type Entry struct {
	ID   string `json:"id" yaml:"id"`
	Path string `json:"path" yaml:"path"`
}

// tableSpec is the on-disk YAML shape of a routing table.
type tableSpec struct {
	Version   int      `yaml:"version"`
	Routes    []Entry  `yaml:"routes"`
	Providers []string `yaml:"providers"`
}

type tableEntry struct {
	id       string
	segments []string
	path     string
}

// Table is the finite, versioned mapping from route identifiers to
// internal path templates, plus the set of registered external auth
// providers. It is immutable after construction.
type Table struct {
	version   int
	entries   []tableEntry
	providers map[string]struct{}
}

// NewTable builds a routing table from entries and provider names. It
// rejects duplicate route identifiers.
func NewTable(version int, entries []Entry, providers []string) (*Table, error) {
	t := &Table{
		version:   version,
		providers: make(map[string]struct{}, len(providers)),
	}
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		id := strings.Trim(e.ID, "/")
		if id == "" {
			return nil, fmt.Errorf("routing table: entry with empty id")
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("routing table: %q: %w", id, domain.ErrRouteConflict)
		}
		seen[id] = struct{}{}
		t.entries = append(t.entries, tableEntry{
			id:       id,
			segments: strings.Split(id, "/"),
			path:     e.Path,
		})
	}
	for _, p := range providers {
		t.providers[p] = struct{}{}
	}
	return t, nil
}

// LoadTable reads a routing table from its YAML form.
func LoadTable(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("routing table: read: %w", err)
	}
	var spec tableSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("routing table: parse: %w", err)
	}
	if spec.Version != TableVersion {
		return nil, fmt.Errorf("routing table: version %d: %w", spec.Version, domain.ErrTableVersion)
	}
	return NewTable(spec.Version, spec.Routes, spec.Providers)
}

// DefaultTable returns the built-in v1 routing table of the client app.
func DefaultTable() *Table {
	t, err := NewTable(TableVersion, []Entry{
		{ID: "plans", Path: "/plans"},
		{ID: "referral", Path: "/referral"},
		{ID: "import", Path: "/import?source=url"},
		{ID: "import/url", Path: "/import?source=url"},
		{ID: "import/file", Path: "/import?source=file"},
		{ID: "support", Path: "/support"},
		{ID: "promo/{code}", Path: "/plans?promo={code}"},
	}, []string{"google", "apple", "telegram"})
	if err != nil {
		// The built-in table is static; a conflict here is a programming
		// error caught by the package tests.
		panic(err)
	}
	return t
}

// Version returns the table's declared schema version.
func (t *Table) Version() int {
	return t.version
}

// Provider reports whether name is a registered external auth provider.
func (t *Table) Provider(name string) bool {
	_, ok := t.providers[name]
	return ok
}

// Entries returns the table rows for introspection surfaces.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, Entry{ID: e.id, Path: e.path})
	}
	return out
}

// Resolve matches a route identifier against the table and returns the
// resolved route with captured parameters substituted into the path.
func (t *Table) Resolve(id string) (domain.Route, bool) {
	segments := strings.Split(strings.Trim(id, "/"), "/")
	for _, e := range t.entries {
		params, ok := matchSegments(e.segments, segments)
		if !ok {
			continue
		}
		path := e.path
		for name, value := range params {
			path = strings.ReplaceAll(path, "{"+name+"}", value)
		}
		route := domain.Route{ID: e.id, Path: path}
		if len(params) > 0 {
			route.Params = params
		}
		return route, true
	}
	return domain.Route{}, false
}

func matchSegments(pattern, actual []string) (map[string]string, bool) {
	if len(pattern) != len(actual) {
		return nil, false
	}
	var params map[string]string
	for i, seg := range pattern {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			if actual[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string)
			}
			params[seg[1:len(seg)-1]] = actual[i]
			continue
		}
		if seg != actual[i] {
			return nil, false
		}
	}
	return params, true
}
