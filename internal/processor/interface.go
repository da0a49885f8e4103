package processor

import (
	"github.com/mauv0809/padelton/internal/archive"
	"github.com/mauv0809/padelton/internal/notifier"
)

// Store defines the archive operations required by the processor.
type Store interface {
	archive.ResultStore
}

// Notifier defines the notification operations required by the processor.
type Notifier interface {
	notifier.Notifier
}
