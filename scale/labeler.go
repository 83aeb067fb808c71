package scale

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/DragonZX/ZedGraph/xdate"
)

// RelativeLabeler renders serial-day tick values as humanized offsets from
// a reference time ("3 hours ago", "2 days from now"), the style dashboard
// axes use instead of absolute dates. A zero Ref means now, evaluated per
// label.
type RelativeLabeler struct {
	Ref time.Time
}

func (r RelativeLabeler) Label(v float64) string {
	ref := r.Ref
	if ref.IsZero() {
		ref = time.Now()
	}
	return humanize.RelTime(xdate.Time(v), ref, "ago", "from now")
}
