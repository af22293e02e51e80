package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/codegod100/libby/internal/model"
	"github.com/codegod100/libby/internal/version"
)

// AuthorName is shown on the author link
const AuthorName = "nandi.weird.one"

// newAboutView builds the about drawer: icon, title, author, repository
// and commit links. Links dispatch messages so URL opening stays in one place.
func newAboutView(info version.Info, dispatch func(model.Message)) fyne.CanvasObject {
	icon := canvas.NewImageFromResource(AppIcon)
	icon.SetMinSize(fyne.NewSize(AboutIconSize, AboutIconSize))
	icon.FillMode = canvas.ImageFillContain

	title := widget.NewLabelWithStyle(Text(KeyAppTitle), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	author := linkButton(AuthorName, func() { dispatch(model.OpenAuthorURL{}) })
	repo := linkButton(version.Repository, func() { dispatch(model.OpenRepositoryURL{}) })

	commitURL := info.CommitURL()
	commit := linkButton(
		Text(KeyGitDescription, map[string]any{"Hash": info.ShortCommit(), "Date": info.CommitDate}),
		func() { dispatch(model.LaunchURL{URL: commitURL}) },
	)

	return container.NewVBox(
		container.NewCenter(icon),
		title,
		container.NewCenter(author),
		container.NewCenter(repo),
		container.NewCenter(commit),
	)
}

func linkButton(label string, tapped func()) *widget.Button {
	b := widget.NewButton(label, tapped)
	b.Importance = widget.LowImportance
	return b
}
