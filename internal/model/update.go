package model

import (
	"fmt"

	"github.com/codegod100/libby/internal/version"
)

// AuthorURL is the author's profile.
const AuthorURL = "https://deer.social/profile/did:plc:ngokl2gnmpbvuvrfckja3g7p"

// Effects lists the side effects requested by one Update.
type Effects struct {
	// OpenURL is handed to the OS default handler when non-empty.
	OpenURL string
	// SaveConfig asks for the current State.Config to be persisted.
	SaveConfig bool
	// UpdateTitle asks for the window title to follow the active page.
	UpdateTitle bool
	// Notice is a diagnostic line for the log.
	Notice string
}

// Update applies msg to s and returns the side effects to run.
func Update(s *State, msg Message) Effects {
	switch msg := msg.(type) {
	case OpenRepositoryURL:
		return Effects{OpenURL: version.Repository}

	case OpenAuthorURL:
		return Effects{OpenURL: AuthorURL}

	case LaunchURL:
		return Effects{OpenURL: msg.URL}

	case SubscriptionChannel:
		return Effects{Notice: "button clicked"}

	case TogglePopup:
		s.ShowPopup = !s.ShowPopup

	case ToggleContextPage:
		if s.ContextPage == msg.Page {
			s.ShowContext = !s.ShowContext
		} else {
			s.ContextPage = msg.Page
			s.ShowContext = true
		}

	case UpdateConfig:
		s.Config = msg.Config

	case SetUsername:
		s.Config.Username = msg.Username
		return Effects{SaveConfig: true}

	case Tick:
		s.AnimationTime = msg.At

	case SelectPage:
		if !msg.Page.Valid() {
			return Effects{Notice: fmt.Sprintf("ignoring unknown page %d", int(msg.Page))}
		}
		s.Page = msg.Page
		return Effects{UpdateTitle: true}
	}
	return Effects{}
}
