package navigator_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	navigator "github.com/Beep206/CyberVPN-sub013"
	"github.com/Beep206/CyberVPN-sub013/pkg/adapters/memory"
	"github.com/Beep206/CyberVPN-sub013/pkg/domain"
)

func settle(t *testing.T, nav *navigator.Navigator, path string, msg string) {
	t.Helper()
	assert.Eventually(t, func() bool {
		return nav.Current() == path
	}, 2*time.Second, 5*time.Millisecond, msg)
}

func TestNavigator_ColdStartToLogin(t *testing.T) {
	identity := memory.NewIdentitySource()
	onboarding := memory.NewOnboardingSource()
	quickSetup := memory.NewQuickSetupSource(true)

	nav, err := navigator.New(identity, onboarding, quickSetup)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, nav.Start(ctx))
	defer nav.Close()

	// Splash waits while sources load.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, "", nav.Current())

	onboarding.Resolve(true)
	identity.SetStatus(domain.IdentityUnauthenticated)

	settle(t, nav, "/login", "cold start without a session lands on login")
}

func TestNavigator_DeepLinkSurvivesLogin(t *testing.T) {
	identity := memory.NewIdentitySource()
	onboarding := memory.NewOnboardingSource()
	quickSetup := memory.NewQuickSetupSource(true)

	nav, err := navigator.New(identity, onboarding, quickSetup)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, nav.Start(ctx))
	defer nav.Close()

	onboarding.Resolve(true)
	identity.SetStatus(domain.IdentityUnauthenticated)
	settle(t, nav, "/login", "login first")

	// A marketing link arrives before the user has a session.
	nav.OpenURI("https://cybervpn.app/app/plans")
	settle(t, nav, "/login", "still on login after staging")

	identity.SetStatus(domain.IdentityAuthenticated)
	settle(t, nav, "/plans", "staged destination replays after login")
}

func TestNavigator_QuickSetupBeforePendingRoute(t *testing.T) {
	identity := memory.NewIdentitySource()
	onboarding := memory.NewOnboardingSource()
	quickSetup := memory.NewQuickSetupSource(false)

	nav, err := navigator.New(identity, onboarding, quickSetup)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, nav.Start(ctx))
	defer nav.Close()

	onboarding.Resolve(true)
	identity.SetStatus(domain.IdentityUnauthenticated)
	settle(t, nav, "/login", "login first")

	nav.OpenURI("cybervpn://referral")
	identity.SetStatus(domain.IdentityAuthenticated)

	// First login: quick setup gates before the staged route.
	settle(t, nav, "/quick-setup", "quick setup comes first")

	// Completing quick setup and navigating on replays the staged route.
	quickSetup.SetCompleted(true)
	nav.Navigate("/")
	settle(t, nav, "/referral", "pending route replays after quick setup")
}

func TestNavigator_AuthenticatedBrowsing(t *testing.T) {
	identity := memory.NewIdentitySource()
	onboarding := memory.NewOnboardingSource()
	quickSetup := memory.NewQuickSetupSource(true)

	nav, err := navigator.New(identity, onboarding, quickSetup)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, nav.Start(ctx))
	defer nav.Close()

	onboarding.Resolve(true)
	identity.SetStatus(domain.IdentityAuthenticated)
	settle(t, nav, "/home", "authenticated cold start lands home")

	nav.Navigate("/settings")
	settle(t, nav, "/settings", "ungated screens pass through")

	// Logging out pulls the user back to login.
	identity.SetStatus(domain.IdentityUnauthenticated)
	settle(t, nav, "/login", "logout gates the current screen")
}

func TestNavigator_RequiresSources(t *testing.T) {
	_, err := navigator.New(nil, nil, nil)
	assert.Error(t, err)
}
