package domain

// DecisionKind tags the outcome of one engine evaluation.
type DecisionKind string

const (
	// DecisionAllow lets the requested path stand.
	DecisionAllow DecisionKind = "allow"
	// DecisionRedirect replaces the requested path with Target.
	DecisionRedirect DecisionKind = "redirect"
	// DecisionStay suppresses any navigation. Only the splash rule emits
	// it, while foundational state is still loading.
	DecisionStay DecisionKind = "stay"
)

// Rule names the precedence rule that produced a decision. Recorded for
// diagnostics, metrics and the explain surfaces; never used for control
// flow by callers.
type Rule string

const (
	RuleSplash         Rule = "splash"
	RuleAuthCallback   Rule = "auth-callback"
	RuleDeepLink       Rule = "deeplink"
	RuleOnboardingGate Rule = "onboarding-gate"
	RuleLoginGate      Rule = "login-gate"
	RulePostAuth       Rule = "post-auth"
	RuleRootLanding    Rule = "root-landing"
	RuleAllow          Rule = "allow"
	// RuleFallback marks the defense-in-depth catch-all mapping an
	// unexpected panic to the login redirect.
	RuleFallback Rule = "fallback"
)

// Decision is the result of evaluating one snapshot against the ordered
// rule table. Target is set only for redirects. ExternalAuth, when
// non-nil, signals the caller to invoke the external auth handler as a
// side effect, regardless of Kind.
type Decision struct {
	Kind         DecisionKind  `json:"kind"`
	Target       string        `json:"target,omitempty"`
	Rule         Rule          `json:"rule"`
	ExternalAuth *AuthCallback `json:"external_auth,omitempty"`
}

// Allow returns an allow decision attributed to the given rule.
func Allow(rule Rule) Decision {
	return Decision{Kind: DecisionAllow, Rule: rule}
}

// Redirect returns a redirect decision to the given path.
func Redirect(path string, rule Rule) Decision {
	return Decision{Kind: DecisionRedirect, Target: path, Rule: rule}
}

// Stay returns a stay decision attributed to the given rule.
func Stay(rule Rule) Decision {
	return Decision{Kind: DecisionStay, Rule: rule}
}
