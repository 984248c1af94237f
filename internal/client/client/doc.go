// Package client contains the client-side building blocks for talking to
// the ResumeRAG backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Login, Signup, Upload, Search.
//  2. A concrete HTTP implementation (see HTTPClient) that sends JSON or
//     multipart bodies, attaches the bearer token and a request ID, and maps
//     failures into the error taxonomy below.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
//   - *APIError: a response arrived with a non-2xx status; Message carries
//     the body's "error" text when present (see ServerMessage).
//   - ErrUnavailable: no response was received.
//   - ErrUnexpectedResponse: a 2xx body could not be decoded or lacked
//     required fields.
//
// Match with errors.Is / errors.As. No request is retried and a 401 is not
// handled specially.
package client
