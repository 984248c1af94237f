// Package cli provides the interactive resumerag command-line client.
//
// App is the root controller: it owns the SessionStore, restores the
// persisted session on start and shows either the auth screen or the
// dashboard of the logged-in user. The REPL dispatches commands to the
// active screen.
//
// Logged out:
//   - login, signup   authenticate (prompts for email and password)
//   - switch          toggle between login and signup
//
// Logged in:
//   - select <path>   choose a PDF resume
//   - upload          upload the selected resume
//   - search <query>  search the uploaded resumes
//   - results         show the last search again
//   - whoami          show the current user
//   - logout          end the session
//
// The REPL is started with App.Run, which blocks until the user exits.
package cli
