package journal

import (
	"github.com/aretw0/introspection"

	"github.com/aretw0/almanac/pkg/calendar"
)

// PreparerState exposes internal state for observability.
type PreparerState struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Days      int    `json:"days"`
	Weeks     int    `json:"weeks"`
	Months    int    `json:"months"`
	Years     int    `json:"years"`
	Unchanged int    `json:"unchanged"`
	Last      string `json:"last,omitempty"`
}

// State implements introspection.Introspectable.
func (p *Preparer) State() any {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return PreparerState{
		From:      p.From.String(),
		To:        p.To.String(),
		Days:      p.prepared[calendar.KindDay],
		Weeks:     p.prepared[calendar.KindWeek],
		Months:    p.prepared[calendar.KindMonth],
		Years:     p.prepared[calendar.KindYear],
		Unchanged: p.unchanged,
		Last:      p.last,
	}
}

// ComponentType implements introspection.Component.
func (p *Preparer) ComponentType() string {
	return "preparer"
}

var _ introspection.Introspectable = (*Preparer)(nil)
var _ introspection.Component = (*Preparer)(nil)
