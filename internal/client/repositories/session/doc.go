// Package session persists the client's two durable values, the auth token
// and the serialized user record, in the session_values table.
//
// Contract
//
//   - Load returns ("", "", nil) for keys that were never written.
//   - Save writes both values; run it inside dbx.WithTx so the pair is
//     stored atomically.
//   - Clear removes both values and is idempotent.
package session
