package key

import "github.com/dshills/tickloop/internal/renderer/backend"

// Modifier names in reporting order.
const (
	Ctrl  = "ctrl"
	Shift = "shift"
	Alt   = "alt"
	Meta  = "meta"
)

// ModifierNames lists the modifiers held in m, always in the order
// ctrl, shift, alt, meta. It returns nil when none are held.
func ModifierNames(m backend.ModMask) []string {
	var names []string
	if m.Has(backend.ModCtrl) {
		names = append(names, Ctrl)
	}
	if m.Has(backend.ModShift) {
		names = append(names, Shift)
	}
	if m.Has(backend.ModAlt) {
		names = append(names, Alt)
	}
	if m.Has(backend.ModMeta) {
		names = append(names, Meta)
	}
	return names
}
