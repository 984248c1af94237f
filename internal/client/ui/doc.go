// Package ui holds the screen state of the resumerag client independently of
// how it is drawn. AuthScreen collects credentials and produces a session;
// Dashboard runs the upload and search actions for a logged-in user and
// retains the latest search session.
//
// Each action moves through an ActionState. A Dashboard refuses to start an
// action while another one is pending and reports ErrBusy instead.
package ui
