package model

import (
	"strings"
	"time"

	"github.com/codegod100/libby/internal/config"
)

// State is the whole application state. It is owned by the controller and
// only mutated through Update.
type State struct {
	Page        Page
	ContextPage ContextPage
	ShowContext bool
	ShowPopup   bool
	Config      config.Config

	// AnimationStart is the clock origin, AnimationTime the latest tick.
	AnimationStart time.Time
	AnimationTime  time.Time
}

// NewState returns the startup state: first page active, drawer and popup
// closed, animation clock at now.
func NewState(cfg config.Config, now time.Time) *State {
	return &State{
		Page:           PageKawaii,
		ContextPage:    ContextAbout,
		Config:         cfg,
		AnimationStart: now,
		AnimationTime:  now,
	}
}

// Elapsed is the animation time since start.
func (s *State) Elapsed() time.Duration {
	return s.AnimationTime.Sub(s.AnimationStart)
}

// PopupVisible reports whether the popup is rendered. It only exists on the
// first page.
func (s *State) PopupVisible() bool {
	return s.ShowPopup && s.Page == PageKawaii
}

// DisplayName returns the configured username, or fallback when it is blank.
func (s *State) DisplayName(fallback string) string {
	if name := strings.TrimSpace(s.Config.Username); name != "" {
		return name
	}
	return fallback
}
