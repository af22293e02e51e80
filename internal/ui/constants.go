package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window sizing
const (
	WindowWidth  float32 = 960
	WindowHeight float32 = 640
)

// Layout sizing
const (
	NavWidth      float32 = 180
	DrawerWidth   float32 = 320
	CanvasMinSize float32 = 240
	AboutIconSize float32 = 96
	PopupWidth    float32 = 360
)

// KawaiiEmojis is the decorative row on the first page
var KawaiiEmojis = []string{"🐱", "💖", "🎀", "🌙", "⭐"}

// Keyboard shortcuts for the View menu
var (
	ShortcutAbout    = &desktop.CustomShortcut{KeyName: fyne.KeyI, Modifier: fyne.KeyModifierShortcutDefault}
	ShortcutSettings = &desktop.CustomShortcut{KeyName: fyne.KeyComma, Modifier: fyne.KeyModifierShortcutDefault}
)

// Text fragments
const (
	TitleSeparator = " — "
	// DefaultDisplayName greets the user when neither a username nor an OS
	// user name is available.
	DefaultDisplayName = "friend"
)
