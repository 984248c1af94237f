package models

// Severity classifies a StatusMessage.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// StatusMessage is the transient feedback line shown on a screen. It is
// replaced by the next action; an empty Text means nothing to show.
type StatusMessage struct {
	Text     string
	Severity Severity
}

func Info(text string) StatusMessage    { return StatusMessage{Text: text, Severity: SeverityInfo} }
func Success(text string) StatusMessage { return StatusMessage{Text: text, Severity: SeveritySuccess} }
func Failure(text string) StatusMessage { return StatusMessage{Text: text, Severity: SeverityError} }

// IsZero reports whether there is nothing to show.
func (m StatusMessage) IsZero() bool { return m.Text == "" }
