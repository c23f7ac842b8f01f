package observer

import (
	"fmt"
	"io"
	"os"
)

// NewsAgency is the concrete subject of the demo: it broadcasts headline
// strings to its subscribers.
type NewsAgency struct {
	Subject[string]
}

// NewAgency returns a NewsAgency with no subscribers and no news.
func NewAgency() *NewsAgency {
	return &NewsAgency{}
}

// SetNews publishes a headline: the state changes and every subscriber is
// notified in attachment order.
func (a *NewsAgency) SetNews(news string) {
	a.SetState(news)
}

// Subscriber is the concrete observer of the demo: it narrates every update
// it receives to its writer.
type Subscriber struct {
	name string
	w    io.Writer
}

// NewSubscriber returns a named subscriber narrating to w.
// A nil w falls back to os.Stdout.
func NewSubscriber(name string, w io.Writer) *Subscriber {
	if w == nil {
		w = os.Stdout
	}

	return &Subscriber{name: name, w: w}
}

// Update writes "<name> received update: <message>".
func (s *Subscriber) Update(message string) {
	fmt.Fprintf(s.w, "%s received update: %s\n", s.name, message)
}
