package i18n

import "time"

// Resolver computes a translation at lookup time.
// It receives the date being rendered, the surrounding format string
// (empty when the name is requested on its own) and the entry index
// (month 0-11 or weekday 0-6).
type Resolver func(date time.Time, context string, index int) string

// Message is a single translation entry: either a literal string or a Resolver.
// The zero value is an empty literal.
type Message struct {
	resolve Resolver
	text    string
}

// Literal returns a Message holding a fixed string.
func Literal(text string) Message {
	return Message{text: text}
}

// Resolved returns a Message backed by fn.
func Resolved(fn Resolver) Message {
	return Message{resolve: fn}
}

// IsResolver reports whether the message is computed by a Resolver.
func (m Message) IsResolver() bool {
	return m.resolve != nil
}

// Text returns the literal text. Resolver messages return an empty string.
func (m Message) Text() string {
	return m.text
}

// Resolve returns the message text for the given date, context and index.
// Literal messages ignore the arguments.
func (m Message) Resolve(date time.Time, context string, index int) string {
	if m.resolve != nil {
		return m.resolve(date, context, index)
	}
	return m.text
}
