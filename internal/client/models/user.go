package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrEmptyUser is returned when a user record is missing or JSON null.
var ErrEmptyUser = errors.New("empty user record")

// User is the server's user record. ID and Email are decoded for display;
// the complete record, including fields the client does not know about,
// is kept in Raw and is what gets persisted.
type User struct {
	ID    string
	Email string
	Raw   json.RawMessage
}

// UnmarshalJSON accepts an object whose "id" is a JSON number or string.
func (u *User) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ErrEmptyUser
	}

	var probe struct {
		ID    json.RawMessage `json:"id"`
		Email string          `json:"email"`
	}
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return fmt.Errorf("decode user: %w", err)
	}

	id, err := decodeID(probe.ID)
	if err != nil {
		return err
	}

	u.ID = id
	u.Email = probe.Email
	u.Raw = append(json.RawMessage(nil), trimmed...)
	return nil
}

// MarshalJSON returns the original record when available.
func (u User) MarshalJSON() ([]byte, error) {
	if len(u.Raw) > 0 {
		return u.Raw, nil
	}
	out := map[string]string{"id": u.ID}
	if u.Email != "" {
		out["email"] = u.Email
	}
	return json.Marshal(out)
}

func decodeID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return "", fmt.Errorf("decode user id %s: %w", string(raw), err)
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return "", fmt.Errorf("decode user id %s: %w", string(raw), err)
	}
	return n.String(), nil
}

// ParseUser decodes a persisted user record.
func ParseUser(data []byte) (User, error) {
	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return User{}, err
	}
	return u, nil
}
