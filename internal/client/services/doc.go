// Package services contains the application services of the resumerag
// client: the SessionStore that owns the process-wide session and the
// AuthService that turns credentials into a session.
package services
