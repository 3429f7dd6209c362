package ports

// NavStack is the visible screen stack the trigger applies decisions to.
// Implementations must preserve history on ReplaceTop: only the top entry
// changes, earlier entries survive for back navigation.
type NavStack interface {
	// Push appends a new entry for an allowed navigation.
	Push(path string)

	// ReplaceTop swaps the top entry for a redirect target. On an empty
	// stack it behaves like Push.
	ReplaceTop(path string)

	// Current returns the path of the top entry, or "" when empty.
	Current() string
}
