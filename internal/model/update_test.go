package model

import (
	"testing"
	"time"

	"github.com/codegod100/libby/internal/config"
	"github.com/codegod100/libby/internal/version"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestState() *State {
	return NewState(config.Default(), epoch)
}

func TestNewState(t *testing.T) {
	s := newTestState()

	if s.Page != PageKawaii {
		t.Errorf("Expected first page active, got %s", s.Page)
	}
	if s.ShowContext || s.ShowPopup {
		t.Error("Drawer and popup should start closed")
	}
	if s.ContextPage != ContextAbout {
		t.Errorf("Expected about context page, got %s", s.ContextPage)
	}
	if s.Elapsed() != 0 {
		t.Errorf("Expected zero elapsed, got %v", s.Elapsed())
	}
}

func TestUpdate_SelectPage(t *testing.T) {
	for _, target := range Pages() {
		for _, start := range Pages() {
			s := newTestState()
			s.Page = start

			fx := Update(s, SelectPage{Page: target})

			if s.Page != target {
				t.Errorf("SelectPage(%s) from %s: active page = %s", target, start, s.Page)
			}
			for _, other := range Pages() {
				if other != target && s.Page == other {
					t.Errorf("SelectPage(%s): page %s also active", target, other)
				}
			}
			if !fx.UpdateTitle {
				t.Errorf("SelectPage(%s) should request a title update", target)
			}
		}
	}
}

func TestUpdate_SelectInvalidPage(t *testing.T) {
	s := newTestState()
	s.Page = PageContent

	fx := Update(s, SelectPage{Page: Page(9)})

	if s.Page != PageContent {
		t.Errorf("Invalid page should not change the active page, got %s", s.Page)
	}
	if fx.UpdateTitle || fx.Notice == "" {
		t.Errorf("Unexpected effects %+v", fx)
	}
}

func TestUpdate_TogglePopupTwice(t *testing.T) {
	for _, initial := range []bool{false, true} {
		s := newTestState()
		s.ShowPopup = initial

		Update(s, TogglePopup{})
		if s.ShowPopup == initial {
			t.Errorf("TogglePopup should flip %v", initial)
		}
		Update(s, TogglePopup{})
		if s.ShowPopup != initial {
			t.Errorf("Double toggle should restore %v, got %v", initial, s.ShowPopup)
		}
	}
}

func TestPopupVisibleOnlyOnFirstPage(t *testing.T) {
	s := newTestState()
	Update(s, TogglePopup{})

	tests := []struct {
		page     Page
		expected bool
	}{
		{PageKawaii, true},
		{PageContent, false},
		{PageSettings, false},
	}

	for _, test := range tests {
		Update(s, SelectPage{Page: test.page})
		if s.PopupVisible() != test.expected {
			t.Errorf("PopupVisible() on %s = %v, expected %v", test.page, s.PopupVisible(), test.expected)
		}
	}
}

func TestUpdate_ToggleContextPage(t *testing.T) {
	s := newTestState()

	// Same page, drawer closed: opens.
	Update(s, ToggleContextPage{Page: ContextAbout})
	if !s.ShowContext || s.ContextPage != ContextAbout {
		t.Fatalf("Expected about drawer open, got show=%v page=%s", s.ShowContext, s.ContextPage)
	}

	// Same page, drawer open: closes.
	Update(s, ToggleContextPage{Page: ContextAbout})
	if s.ShowContext {
		t.Fatal("Toggling the active context page should close the drawer")
	}

	// Different page while closed: opens showing it.
	Update(s, ToggleContextPage{Page: ContextSettings})
	if !s.ShowContext || s.ContextPage != ContextSettings {
		t.Fatalf("Expected settings drawer open, got show=%v page=%s", s.ShowContext, s.ContextPage)
	}

	// Different page while open: switches and stays open.
	Update(s, ToggleContextPage{Page: ContextAbout})
	if !s.ShowContext || s.ContextPage != ContextAbout {
		t.Fatalf("Expected about drawer open, got show=%v page=%s", s.ShowContext, s.ContextPage)
	}
}

func TestUpdate_URLs(t *testing.T) {
	tests := []struct {
		name     string
		msg      Message
		expected string
	}{
		{"repository", OpenRepositoryURL{}, version.Repository},
		{"author", OpenAuthorURL{}, AuthorURL},
		{"launch", LaunchURL{URL: "https://example.com/commits/abc"}, "https://example.com/commits/abc"},
	}

	for _, test := range tests {
		s := newTestState()
		before := *s
		fx := Update(s, test.msg)
		if fx.OpenURL != test.expected {
			t.Errorf("%s: OpenURL = %q, expected %q", test.name, fx.OpenURL, test.expected)
		}
		if *s != before {
			t.Errorf("%s: URL messages should not change state", test.name)
		}
	}
}

func TestUpdate_SubscriptionChannel(t *testing.T) {
	fx := Update(newTestState(), SubscriptionChannel{})
	if fx.Notice != "button clicked" {
		t.Errorf("Expected notice, got %q", fx.Notice)
	}
}

func TestUpdate_Config(t *testing.T) {
	s := newTestState()

	fx := Update(s, UpdateConfig{Config: config.Config{Version: config.Version, Username: "remote"}})
	if s.Config.Username != "remote" {
		t.Errorf("UpdateConfig should replace config, got %+v", s.Config)
	}
	if fx.SaveConfig {
		t.Error("UpdateConfig must not save the config back")
	}

	fx = Update(s, SetUsername{Username: "local"})
	if s.Config.Username != "local" {
		t.Errorf("SetUsername should replace username, got %q", s.Config.Username)
	}
	if !fx.SaveConfig {
		t.Error("SetUsername should request a save")
	}
}

func TestUpdate_Tick(t *testing.T) {
	s := newTestState()
	Update(s, Tick{At: epoch.Add(1500 * time.Millisecond)})

	if s.Elapsed() != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s elapsed, got %v", s.Elapsed())
	}
}

func TestDisplayName(t *testing.T) {
	s := newTestState()

	if got := s.DisplayName("sys"); got != "sys" {
		t.Errorf("Empty username should fall back, got %q", got)
	}

	s.Config.Username = "   "
	if got := s.DisplayName("sys"); got != "sys" {
		t.Errorf("Blank username should fall back, got %q", got)
	}

	s.Config.Username = " libby "
	if got := s.DisplayName("sys"); got != "libby" {
		t.Errorf("Expected trimmed username, got %q", got)
	}
}
