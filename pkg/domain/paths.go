package domain

// Paths enumerates the canonical screen paths the engine gates on. The
// zero value is not useful; start from DefaultPaths and override fields as
// needed.
type Paths struct {
	// Splash is the cold-start loading screen.
	Splash string
	// Root is the empty "where do I go" landing request.
	Root string
	// Login, Signup and Reset form the auth family.
	Login  string
	Signup string
	Reset  string
	// Onboarding is the pre-login first-run flow.
	Onboarding string
	// QuickSetup is the one-time post-login setup flow.
	QuickSetup string
	// Home is the default authenticated destination.
	Home string
}

// DefaultPaths returns the canonical path set of the client app.
func DefaultPaths() Paths {
	return Paths{
		Splash:     "/splash",
		Root:       "/",
		Login:      "/login",
		Signup:     "/signup",
		Reset:      "/reset",
		Onboarding: "/onboarding",
		QuickSetup: "/quick-setup",
		Home:       "/home",
	}
}

// IsAuthFamily reports whether path is one of the unauthenticated auth
// screens (login, signup, password reset).
func (p Paths) IsAuthFamily(path string) bool {
	return path == p.Login || path == p.Signup || path == p.Reset
}
