// Package navigator decides, for every requested screen of the client
// app, whether the user may proceed or must be redirected elsewhere.
//
// The decision combines three independently-resolving state sources
// (identity, first-run onboarding, first-login quick setup) with an
// optional deep link, through an ordered, first-match-wins rule table.
// Deep links arriving before authentication are staged in a single-slot
// pending store and replayed once the user logs in.
//
// The package wires the pieces for embedders:
//
//	nav, err := navigator.New(identity, onboarding, quickSetup)
//	if err != nil { ... }
//	if err := nav.Start(ctx); err != nil { ... }
//	defer nav.Close()
//
//	nav.Navigate("/home")            // user taps a tab
//	nav.OpenURI("cybervpn://plans")  // incoming deep link
//
// Sources, stores and the screen stack are explicit dependencies; see
// pkg/ports for the interfaces and pkg/adapters for ready-made
// implementations.
package navigator
