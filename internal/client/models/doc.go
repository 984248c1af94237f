// Package models defines the client-side data shapes of the resumerag CLI:
// the authenticated session, search results, and transient status messages.
package models
