package model

import (
	"time"

	"github.com/codegod100/libby/internal/config"
)

// Message is an event delivered to Update. The set is closed: only the
// types in this file implement it.
type Message interface {
	isMessage()
}

// OpenRepositoryURL opens the project repository.
type OpenRepositoryURL struct{}

// OpenAuthorURL opens the author's profile.
type OpenAuthorURL struct{}

// SubscriptionChannel is emitted once by the background listener and by the
// button on the content page.
type SubscriptionChannel struct{}

// ToggleContextPage opens, closes or switches the context drawer.
type ToggleContextPage struct {
	Page ContextPage
}

// TogglePopup shows or hides the popup of the first page.
type TogglePopup struct{}

// UpdateConfig replaces the configuration after an external change.
type UpdateConfig struct {
	Config config.Config
}

// LaunchURL opens an arbitrary URL.
type LaunchURL struct {
	URL string
}

// Tick advances the animation clock.
type Tick struct {
	At time.Time
}

// SelectPage activates a navigation page.
type SelectPage struct {
	Page Page
}

// SetUsername stores a new username from the settings form.
type SetUsername struct {
	Username string
}

func (OpenRepositoryURL) isMessage()   {}
func (OpenAuthorURL) isMessage()       {}
func (SubscriptionChannel) isMessage() {}
func (ToggleContextPage) isMessage()   {}
func (TogglePopup) isMessage()         {}
func (UpdateConfig) isMessage()        {}
func (LaunchURL) isMessage()           {}
func (Tick) isMessage()                {}
func (SelectPage) isMessage()          {}
func (SetUsername) isMessage()         {}
