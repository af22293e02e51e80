package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// SettingsForm edits the persisted username. The same form is used on the
// settings page and in the context drawer.
type SettingsForm struct {
	usernameEntry *widget.Entry
	hintLabel     *widget.Label
	statusLabel   *widget.Label
	form          *widget.Form
	content       *fyne.Container

	loaded string
	onSave func(username string)
}

// NewSettingsForm creates a settings form. fallback is the name shown when
// the username is left empty.
func NewSettingsForm(fallback string, onSave func(username string)) *SettingsForm {
	sf := &SettingsForm{onSave: onSave}
	sf.createUI(fallback)
	return sf
}

// createUI creates the settings form UI
func (sf *SettingsForm) createUI(fallback string) {
	sf.usernameEntry = widget.NewEntry()
	sf.usernameEntry.SetPlaceHolder(fallback)
	sf.usernameEntry.OnSubmitted = func(string) { sf.submit() }

	sf.hintLabel = widget.NewLabel(Text(KeyUsernameHint, map[string]any{"Name": fallback}))
	sf.hintLabel.Wrapping = fyne.TextWrapWord
	sf.hintLabel.Importance = widget.LowImportance

	sf.statusLabel = widget.NewLabel("")
	sf.statusLabel.Importance = widget.SuccessImportance
	sf.statusLabel.Hide()

	sf.form = widget.NewForm(widget.NewFormItem(Text(KeyUsername), sf.usernameEntry))
	sf.form.SubmitText = Text(KeySave)
	sf.form.OnSubmit = sf.submit

	sf.content = container.NewVBox(sf.form, sf.hintLabel, sf.statusLabel)
}

// Container returns the form's canvas object
func (sf *SettingsForm) Container() fyne.CanvasObject {
	return sf.content
}

// Load shows username in the entry. It is a no-op when the username did not
// change since the last Load, so text being typed is not overwritten by
// unrelated renders.
func (sf *SettingsForm) Load(username string) {
	if username == sf.loaded {
		return
	}
	sf.loaded = username
	sf.usernameEntry.SetText(username)
}

// Username returns the text currently in the entry
func (sf *SettingsForm) Username() string {
	return sf.usernameEntry.Text
}

// submit hands the trimmed username to the save callback
func (sf *SettingsForm) submit() {
	name := strings.TrimSpace(sf.usernameEntry.Text)
	sf.loaded = name
	if sf.usernameEntry.Text != name {
		sf.usernameEntry.SetText(name)
	}
	if sf.onSave != nil {
		sf.onSave(name)
	}
	sf.statusLabel.SetText(Text(KeySettingsSaved))
	sf.statusLabel.Show()
}
