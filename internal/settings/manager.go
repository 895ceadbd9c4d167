package settings

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/data/binding"
	"go.uber.org/zap"

	"TacNotepad/internal/state"
)

// Preference keys.
const (
	keySelectedPage  = "notepad.selectedPage"
	keySelectedColor = "notepad.selectedPathColor"
	keySelectedWidth = "notepad.selectedPathWidth"
)

// Manager exposes the persisted notepad selection as bindings backed by
// the app's preferences. Writes to the bindings are saved immediately.
type Manager struct {
	Config Config

	page  binding.Int
	color binding.String
	width binding.Float
}

var _ state.PenSource = (*Manager)(nil)

// NewManager binds the selection to prefs. Values that are missing or out
// of range are replaced with conf's defaults first.
func NewManager(prefs fyne.Preferences, conf Config, lggr *zap.SugaredLogger) *Manager {
	page := prefs.IntWithFallback(keySelectedPage, int(state.PageOne))
	if !state.Page(page).Valid() {
		lggr.Warnf("Stored page %d is unknown, resetting", page)
		page = int(state.PageOne)
	}
	prefs.SetInt(keySelectedPage, page)

	color := prefs.StringWithFallback(keySelectedColor, conf.DefaultColor)
	if !state.SameColor(color, color) {
		lggr.Warnf("Stored color %q is invalid, resetting", color)
		color = conf.DefaultColor
	}
	prefs.SetString(keySelectedColor, color)

	width := conf.ClampWidth(prefs.FloatWithFallback(keySelectedWidth, conf.DefaultWidth))
	prefs.SetFloat(keySelectedWidth, width)

	lggr.Debugf("Loaded selection page=%d color=%s width=%.1f", page, color, width)
	return &Manager{
		Config: conf,
		page:   binding.BindPreferenceInt(keySelectedPage, prefs),
		color:  binding.BindPreferenceString(keySelectedColor, prefs),
		width:  binding.BindPreferenceFloat(keySelectedWidth, prefs),
	}
}

func (m *Manager) SelectedPage() binding.Int         { return m.page }
func (m *Manager) SelectedPathColor() binding.String { return m.color }
func (m *Manager) SelectedPathWidth() binding.Float  { return m.width }
