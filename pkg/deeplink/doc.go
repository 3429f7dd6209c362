// Package deeplink interprets externally-issued URIs into typed internal
// routes via a fixed, versioned routing table.
//
// Two URI forms are recognized: the custom application scheme
// (cybervpn://...) and a whitelisted prefix under the product's public web
// domain (https://cybervpn.app/app/...). Parsing is pure and total: any
// malformed input, unknown identifier or unknown provider degrades to an
// Unrecognized result instead of an error, so previously-issued links stay
// forward and backward compatible across app versions.
package deeplink
