package domain

// IdentityStatus describes the authentication state of the user as
// reported by the identity source.
type IdentityStatus string

const (
	// IdentityLoading means the identity source has not resolved yet.
	IdentityLoading IdentityStatus = "loading"
	// IdentityAuthenticated means a valid credential is present.
	IdentityAuthenticated IdentityStatus = "authenticated"
	// IdentityUnauthenticated means no valid credential is present.
	IdentityUnauthenticated IdentityStatus = "unauthenticated"
)

// Onboarding describes the first-run onboarding state. It is either still
// loading (Resolved == false) or resolved with a completion flag.
type Onboarding struct {
	Resolved  bool
	Completed bool
}

// OnboardingLoading returns the unresolved onboarding state.
func OnboardingLoading() Onboarding {
	return Onboarding{}
}

// OnboardingResolved returns a resolved onboarding state.
func OnboardingResolved(completed bool) Onboarding {
	return Onboarding{Resolved: true, Completed: completed}
}

// Snapshot is an immutable point-in-time read of every state source
// relevant to one navigation decision. It is assembled by the trigger once
// per evaluation and never persisted; the engine must produce the same
// Decision for the same Snapshot.
type Snapshot struct {
	// Identity is the latest value of the identity source.
	Identity IdentityStatus

	// Onboarding is the latest value of the onboarding source.
	Onboarding Onboarding

	// QuickSetupDone reports whether the one-time first-login setup flow
	// has been completed. Read synchronously, never loading.
	QuickSetupDone bool

	// RequestedPath is the normalized absolute path the navigation request
	// targets. Query strings are not part of routing decisions.
	RequestedPath string
}
