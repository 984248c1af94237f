package models

// Session is the authenticated identity held by the client. Token and User
// are set together or not at all; a nil *Session means "not logged in".
type Session struct {
	Token string
	User  User
}
