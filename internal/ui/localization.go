package ui

import (
	"embed"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/lang"
)

//go:embed translation
var translations embed.FS

var loadTranslationsOnce sync.Once

// loadTranslations registers the embedded translation files with Fyne.
// The active language follows the system locale.
func loadTranslations() {
	loadTranslationsOnce.Do(func() {
		if err := lang.AddTranslationsFS(translations, "translation"); err != nil {
			fyne.LogError("failed to load translations", err)
		}
	})
}

// Text keys for localization
const (
	KeyAppTitle       = "app-title"
	KeyAbout          = "about"
	KeyView           = "view"
	KeySettings       = "settings"
	KeyClose          = "close"
	KeyPageID         = "page-id"
	KeyKawaiiTitle    = "kawaii-title"
	KeyKawaiiWelcome  = "kawaii-welcome"
	KeyKawaiiFace     = "kawaii-face"
	KeyKawaiiButton   = "kawaii-button"
	KeyKawaiiFooter   = "kawaii-footer"
	KeyPopupTitle     = "popup-title"
	KeyPopupBody      = "popup-body"
	KeyContentTitle   = "content-title"
	KeyContentBody    = "content-body"
	KeyClickMe        = "click-me"
	KeySettingsTitle  = "settings-title"
	KeyUsername       = "username"
	KeyUsernameHint   = "username-hint"
	KeySave           = "save"
	KeySettingsSaved  = "settings-saved"
	KeyGitDescription = "git-description"
)

// English fallbacks, used when a key is missing from the active language.
var fallbackTexts = map[string]string{
	KeyAppTitle:       "Libby",
	KeyAbout:          "About",
	KeyView:           "View",
	KeySettings:       "Settings",
	KeyClose:          "Close",
	KeyPageID:         "Page {{.Num}}",
	KeyKawaiiTitle:    "Kawaii Corner",
	KeyKawaiiWelcome:  "Welcome to the cutest page, {{.Name}}!",
	KeyKawaiiFace:     "(◕‿◕)♡",
	KeyKawaiiButton:   "Show a surprise",
	KeyKawaiiFooter:   "Move your mouse through the sparkles ✨",
	KeyPopupTitle:     "This is a popup on page 1!",
	KeyPopupBody:      "This is the body of the popup.",
	KeyContentTitle:   "Page 2 Content",
	KeyContentBody:    "This is page 2 with custom content!",
	KeyClickMe:        "Click me",
	KeySettingsTitle:  "Settings",
	KeyUsername:       "Username",
	KeyUsernameHint:   "Shown on the first page. Leave empty to use {{.Name}}.",
	KeySave:           "Save",
	KeySettingsSaved:  "Settings saved",
	KeyGitDescription: "Git commit {{.Hash}} on {{.Date}}",
}

// Text returns the localized text for key. data, when given, fills the
// template fields of the message.
func Text(key string, data ...map[string]any) string {
	fallback, ok := fallbackTexts[key]
	if !ok {
		fallback = key
	}
	if len(data) > 0 {
		return lang.X(key, fallback, data[0])
	}
	return lang.X(key, fallback)
}

// PageTitle returns the navigation label of the n-th page.
func PageTitle(n int) string {
	return Text(KeyPageID, map[string]any{"Num": n})
}
