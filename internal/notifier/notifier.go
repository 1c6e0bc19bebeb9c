package notifier

import (
	"github.com/confscout/eventscout/internal/event"
)

// Notifier posts announcements for the given events.
type Notifier interface {
	Notify(events []*event.Event) error
}
