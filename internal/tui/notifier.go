package tui

import (
	"io"
	"log"

	"github.com/akyairhashvil/pomo/internal/models"
)

// Notifier is told about every completed countdown.
type Notifier interface {
	Notify(ev models.CompletedEvent, next models.Mode)
}

// BellNotifier rings the terminal bell.
type BellNotifier struct {
	w io.Writer
}

// NewBellNotifier returns a notifier writing to w; a nil w disables the bell.
func NewBellNotifier(w io.Writer) BellNotifier {
	return BellNotifier{w: w}
}

func (n BellNotifier) Notify(ev models.CompletedEvent, next models.Mode) {
	log.Printf("%s complete (cycles=%d), next %s", ev.Mode, ev.CompletedCycles, next)
	if n.w == nil {
		return
	}
	if _, err := io.WriteString(n.w, "\a"); err != nil {
		log.Printf("ring bell: %v", err)
	}
}
