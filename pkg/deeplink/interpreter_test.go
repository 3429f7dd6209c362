package deeplink_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Beep206/CyberVPN-sub013/pkg/deeplink"
	"github.com/Beep206/CyberVPN-sub013/pkg/domain"
)

func TestInterpreter_Parse_InternalRoutes(t *testing.T) {
	interp := deeplink.NewInterpreter(nil)

	cases := []struct {
		name string
		uri  string
		id   string
		path string
	}{
		{"scheme plans", "cybervpn://plans", "plans", "/plans"},
		{"scheme referral", "cybervpn://referral", "referral", "/referral"},
		{"scheme import default", "cybervpn://import", "import", "/import?source=url"},
		{"scheme import file", "cybervpn://import/file", "import/file", "/import?source=file"},
		{"scheme trailing slash", "cybervpn://plans/", "plans", "/plans"},
		{"scheme with query", "cybervpn://plans?utm=mail", "plans", "/plans"},
		{"opaque form", "cybervpn:plans", "plans", "/plans"},
		{"web form", "https://cybervpn.app/app/plans", "plans", "/plans"},
		{"web form subroute", "https://cybervpn.app/app/import/file", "import/file", "/import?source=file"},
		{"web form http", "http://cybervpn.app/app/support", "support", "/support"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := interp.Parse(tc.uri)
			require.Equal(t, domain.DeepLinkRoute, result.Kind)
			require.NotNil(t, result.Route)
			assert.Equal(t, tc.id, result.Route.ID)
			assert.Equal(t, tc.path, result.Route.Path)
		})
	}
}

func TestInterpreter_Parse_ParamCapture(t *testing.T) {
	interp := deeplink.NewInterpreter(nil)

	result := interp.Parse("cybervpn://promo/SUMMER24")
	require.Equal(t, domain.DeepLinkRoute, result.Kind)
	require.NotNil(t, result.Route)
	assert.Equal(t, "/plans?promo=SUMMER24", result.Route.Path)
	assert.Equal(t, "SUMMER24", result.Route.Params["code"])
}

func TestInterpreter_Parse_AuthCallback(t *testing.T) {
	interp := deeplink.NewInterpreter(nil)

	result := interp.Parse("cybervpn://auth/google?code=abc123&state=xyz")
	require.Equal(t, domain.DeepLinkAuthCallback, result.Kind)
	require.NotNil(t, result.Callback)
	assert.Equal(t, "google", result.Callback.Provider)
	assert.Equal(t, "code=abc123&state=xyz", result.Callback.Payload)
	assert.Nil(t, result.Route, "a callback must never resolve to a path")
}

func TestInterpreter_Parse_UnknownProvider(t *testing.T) {
	interp := deeplink.NewInterpreter(nil)

	// Unregistered providers degrade to Unrecognized, not to a callback.
	result := interp.Parse("cybervpn://auth/facebook?code=1")
	assert.Equal(t, domain.DeepLinkUnrecognized, result.Kind)

	// Extra segments past the provider are not a callback either.
	result = interp.Parse("cybervpn://auth/google/extra")
	assert.Equal(t, domain.DeepLinkUnrecognized, result.Kind)
}

func TestInterpreter_Parse_NotADeepLink(t *testing.T) {
	interp := deeplink.NewInterpreter(nil)

	for _, uri := range []string{
		"",
		"   ",
		"https://example.com/app/plans",
		"https://cybervpn.app/pricing",
		"mailto:support@cybervpn.app",
		"ftp://cybervpn.app/app/plans",
	} {
		assert.Equal(t, domain.DeepLinkNone, interp.Parse(uri).Kind, "uri: %q", uri)
	}
}

func TestInterpreter_Parse_Unrecognized(t *testing.T) {
	interp := deeplink.NewInterpreter(nil)

	for _, uri := range []string{
		"cybervpn://",
		"cybervpn:",
		"cybervpn://totally/unknown/route",
		"cybervpn://plansX",
		"https://cybervpn.app/app/",
		"https://cybervpn.app/app/unknown",
	} {
		assert.Equal(t, domain.DeepLinkUnrecognized, interp.Parse(uri).Kind, "uri: %q", uri)
	}
}

// Malformed input must degrade, never panic.
func TestInterpreter_Parse_FaultInjection(t *testing.T) {
	interp := deeplink.NewInterpreter(nil)

	inputs := []string{
		"cybervpn://\xff\xfe",
		"cybervpn://%zz",
		"cybervpn://plans\x00",
		"\xf0\x28\x8c\x28",
		"://missing-scheme",
		"cybervpn://" + string(make([]byte, 4096)),
		"https://cybervpn.app/app/\xff",
	}

	for _, uri := range inputs {
		assert.NotPanics(t, func() {
			result := interp.Parse(uri)
			switch result.Kind {
			case domain.DeepLinkNone, domain.DeepLinkUnrecognized,
				domain.DeepLinkRoute, domain.DeepLinkAuthCallback:
			default:
				t.Errorf("invalid result kind %q for input %q", result.Kind, uri)
			}
		})
	}
}

func TestInterpreter_Parse_SchemeCaseInsensitive(t *testing.T) {
	interp := deeplink.NewInterpreter(nil)

	result := interp.Parse("CYBERVPN://plans")
	require.Equal(t, domain.DeepLinkRoute, result.Kind)
	assert.Equal(t, "/plans", result.Route.Path)
}
