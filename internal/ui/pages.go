package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/codegod100/libby/internal/model"
)

// kawaiiPage is the first page: greeting and popup button over the
// animated canvas.
type kawaiiPage struct {
	canvas   *KawaiiCanvas
	welcome  *widget.Label
	popupBtn *widget.Button
	content  fyne.CanvasObject
}

func newKawaiiPage(dispatch func(model.Message)) *kawaiiPage {
	p := &kawaiiPage{canvas: NewKawaiiCanvas()}

	title := canvas.NewText(Text(KeyKawaiiTitle), theme.Color(theme.ColorNamePrimary))
	title.TextSize = theme.TextHeadingSize() * 1.5
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	p.welcome = widget.NewLabel("")
	p.welcome.Alignment = fyne.TextAlignCenter

	emojis := container.NewHBox()
	for _, e := range KawaiiEmojis {
		emojis.Add(widget.NewLabel(e))
	}

	face := widget.NewLabel(Text(KeyKawaiiFace))
	face.Alignment = fyne.TextAlignCenter

	p.popupBtn = widget.NewButton(Text(KeyKawaiiButton), func() {
		dispatch(model.TogglePopup{})
	})
	p.popupBtn.Importance = widget.HighImportance

	footer := widget.NewLabel(Text(KeyKawaiiFooter))
	footer.Alignment = fyne.TextAlignCenter
	footer.Importance = widget.LowImportance

	column := container.NewVBox(
		title,
		p.welcome,
		container.NewCenter(emojis),
		face,
		container.NewCenter(p.popupBtn),
		footer,
	)

	p.content = container.NewStack(p.canvas, container.NewCenter(column))
	return p
}

func (p *kawaiiPage) render(s *model.State, fallbackName string) {
	welcome := Text(KeyKawaiiWelcome, map[string]any{"Name": s.DisplayName(fallbackName)})
	if p.welcome.Text != welcome {
		p.welcome.SetText(welcome)
	}
	if s.Page == model.PageKawaii {
		p.canvas.SetElapsed(s.Elapsed())
	}
}

// newContentPage is the second, static page.
func newContentPage(dispatch func(model.Message)) fyne.CanvasObject {
	title := widget.NewLabelWithStyle(Text(KeyContentTitle), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	title.SizeName = theme.SizeNameHeadingText

	body := widget.NewLabel(Text(KeyContentBody))
	body.Alignment = fyne.TextAlignCenter

	btn := widget.NewButton(Text(KeyClickMe), func() {
		dispatch(model.SubscriptionChannel{})
	})

	return container.NewCenter(container.NewVBox(title, body, container.NewCenter(btn)))
}

// newSettingsPage hosts the username form.
func newSettingsPage(form *SettingsForm) fyne.CanvasObject {
	title := widget.NewLabelWithStyle(Text(KeySettingsTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	title.SizeName = theme.SizeNameHeadingText

	return container.NewPadded(container.NewBorder(
		container.NewVBox(title, widget.NewSeparator()),
		nil, nil, nil,
		container.NewVBox(form.Container(), layout.NewSpacer()),
	))
}
