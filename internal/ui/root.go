package ui

import (
	"image/color"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/codegod100/libby/internal/controller"
	"github.com/codegod100/libby/internal/model"
	"github.com/codegod100/libby/internal/platform"
	"github.com/codegod100/libby/internal/version"
)

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window
	app    fyne.App
	log    zerolog.Logger

	dispatch     func(model.Message)
	fallbackName string

	// Navigation bar
	navList     *widget.List
	navSelected model.Page
	navSyncing  bool

	// Pages, indexed by model.Page
	kawaii       *kawaiiPage
	pages        []fyne.CanvasObject
	settingsForm *SettingsForm

	// Context drawer
	drawer       *fyne.Container
	drawerTitle  *widget.Label
	drawerBody   *fyne.Container
	drawerPage   model.ContextPage
	drawerForm   *SettingsForm
	drawerViews  map[model.ContextPage]fyne.CanvasObject
	drawerTitles map[model.ContextPage]string

	// Popup shown on the first page
	popup      *dialog.CustomDialog
	popupShown bool
}

var _ controller.View = (*RootUI)(nil)

// NewRootUI creates and initializes the main UI. Messages emitted before
// Bind is called are dropped.
func NewRootUI(window fyne.Window, app fyne.App, log zerolog.Logger) *RootUI {
	loadTranslations()

	fallback := platform.SystemUserName()
	if fallback == "" {
		fallback = DefaultDisplayName
	}

	ui := &RootUI{
		window:       window,
		app:          app,
		log:          log,
		fallbackName: fallback,
		navSelected:  -1,
		drawerPage:   -1,
	}
	ui.dispatch = func(msg model.Message) {
		ui.log.Warn().Msgf("dropping %T: ui not bound", msg)
	}

	ui.setupUI()
	return ui
}

// Bind connects the widgets to the event loop
func (ui *RootUI) Bind(dispatch func(model.Message)) {
	ui.dispatch = dispatch
}

// emit is handed to widgets so they reach whatever dispatch is bound at
// the time of the event.
func (ui *RootUI) emit(msg model.Message) {
	ui.dispatch(msg)
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.navList = widget.NewList(
		func() int { return len(model.Pages()) },
		func() fyne.CanvasObject {
			return container.NewHBox(widget.NewIcon(theme.HomeIcon()), widget.NewLabel(""))
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			row := obj.(*fyne.Container)
			row.Objects[0].(*widget.Icon).SetResource(pageIcon(model.Page(id)))
			row.Objects[1].(*widget.Label).SetText(PageTitle(id + 1))
		},
	)
	ui.navList.OnSelected = func(id widget.ListItemID) {
		if ui.navSyncing {
			return
		}
		ui.emit(model.SelectPage{Page: model.Page(id)})
	}
	navWidth := canvas.NewRectangle(color.Transparent)
	navWidth.SetMinSize(fyne.NewSize(NavWidth, 0))
	nav := container.NewBorder(nil, nil, nil, widget.NewSeparator(), container.NewStack(navWidth, ui.navList))

	saveUsername := func(name string) { ui.emit(model.SetUsername{Username: name}) }
	ui.kawaii = newKawaiiPage(ui.emit)
	ui.settingsForm = NewSettingsForm(ui.fallbackName, saveUsername)
	ui.pages = []fyne.CanvasObject{
		model.PageKawaii:   ui.kawaii.content,
		model.PageContent:  newContentPage(ui.emit),
		model.PageSettings: newSettingsPage(ui.settingsForm),
	}
	pageStack := container.NewStack(ui.pages...)

	ui.createDrawer(saveUsername)
	ui.createPopup()

	ui.window.SetContent(container.NewBorder(nil, nil, nav, ui.drawer, pageStack))
}

// createMenu creates the application menu and its shortcuts
func (ui *RootUI) createMenu() {
	aboutItem := fyne.NewMenuItem(Text(KeyAbout), func() {
		ui.emit(model.ToggleContextPage{Page: model.ContextAbout})
	})
	aboutItem.Shortcut = ShortcutAbout

	settingsItem := fyne.NewMenuItem(Text(KeySettings), func() {
		ui.emit(model.ToggleContextPage{Page: model.ContextSettings})
	})
	settingsItem.Shortcut = ShortcutSettings

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(Text(KeyView), aboutItem, settingsItem),
	))

	ui.window.Canvas().AddShortcut(ShortcutAbout, func(fyne.Shortcut) {
		ui.emit(model.ToggleContextPage{Page: model.ContextAbout})
	})
	ui.window.Canvas().AddShortcut(ShortcutSettings, func(fyne.Shortcut) {
		ui.emit(model.ToggleContextPage{Page: model.ContextSettings})
	})
}

// createDrawer builds the hidden context drawer on the right
func (ui *RootUI) createDrawer(saveUsername func(string)) {
	ui.drawerForm = NewSettingsForm(ui.fallbackName, saveUsername)
	ui.drawerViews = map[model.ContextPage]fyne.CanvasObject{
		model.ContextAbout:    newAboutView(version.Get(), ui.emit),
		model.ContextSettings: ui.drawerForm.Container(),
	}
	ui.drawerTitles = map[model.ContextPage]string{
		model.ContextAbout:    Text(KeyAbout),
		model.ContextSettings: Text(KeySettings),
	}

	ui.drawerTitle = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	closeBtn := widget.NewButtonWithIcon("", theme.CancelIcon(), func() {
		ui.emit(model.ToggleContextPage{Page: ui.drawerPage})
	})
	closeBtn.Importance = widget.LowImportance
	header := container.NewBorder(nil, nil, nil, closeBtn, ui.drawerTitle)

	ui.drawerBody = container.NewStack()
	width := canvas.NewRectangle(color.Transparent)
	width.SetMinSize(fyne.NewSize(DrawerWidth, 0))

	panel := container.NewBorder(
		container.NewVBox(header, widget.NewSeparator()),
		nil, nil, nil,
		container.NewVScroll(ui.drawerBody),
	)
	ui.drawer = container.NewBorder(nil, nil, widget.NewSeparator(), nil,
		container.NewPadded(container.NewStack(width, panel)))
	ui.drawer.Hide()
}

// createPopup builds the first page's dialog. Dismissing it emits the same
// toggle as the button that opened it.
func (ui *RootUI) createPopup() {
	body := widget.NewLabel(Text(KeyPopupBody))
	body.Wrapping = fyne.TextWrapWord

	ui.popup = dialog.NewCustom(Text(KeyPopupTitle), Text(KeyClose), body, ui.window)
	ui.popup.Resize(fyne.NewSize(PopupWidth, 0))
	ui.popup.SetOnClosed(func() {
		if !ui.popupShown {
			return
		}
		ui.popupShown = false
		ui.emit(model.TogglePopup{})
	})
}

// Render brings every widget in line with s
func (ui *RootUI) Render(s *model.State) {
	ui.syncNav(s.Page)
	for i, page := range ui.pages {
		if model.Page(i) == s.Page {
			page.Show()
		} else {
			page.Hide()
		}
	}

	ui.kawaii.render(s, ui.fallbackName)
	ui.settingsForm.Load(s.Config.Username)
	ui.drawerForm.Load(s.Config.Username)

	ui.renderDrawer(s)
	ui.renderPopup(s)
}

// syncNav selects page in the navigation list without emitting a message
func (ui *RootUI) syncNav(page model.Page) {
	if ui.navSelected == page {
		return
	}
	ui.navSelected = page
	ui.navSyncing = true
	ui.navList.Select(widget.ListItemID(page))
	ui.navSyncing = false
}

func (ui *RootUI) renderDrawer(s *model.State) {
	if ui.drawerPage != s.ContextPage {
		ui.drawerPage = s.ContextPage
		ui.drawerTitle.SetText(ui.drawerTitles[s.ContextPage])
		ui.drawerBody.Objects = []fyne.CanvasObject{ui.drawerViews[s.ContextPage]}
		ui.drawerBody.Refresh()
	}

	if s.ShowContext && !ui.drawer.Visible() {
		ui.drawer.Show()
	} else if !s.ShowContext && ui.drawer.Visible() {
		ui.drawer.Hide()
	}
}

func (ui *RootUI) renderPopup(s *model.State) {
	want := s.PopupVisible()
	if want == ui.popupShown {
		return
	}
	ui.popupShown = want
	if want {
		ui.popup.Show()
	} else {
		ui.popup.Hide()
	}
}

// SetTitle updates the window title to follow the active page
func (ui *RootUI) SetTitle(page model.Page) {
	ui.window.SetTitle(Text(KeyAppTitle) + TitleSeparator + PageTitle(page.Number()))
}

// OpenURL opens u with the host application
func (ui *RootUI) OpenURL(u *url.URL) error {
	return ui.app.OpenURL(u)
}

func pageIcon(p model.Page) fyne.Resource {
	switch p {
	case model.PageKawaii:
		return theme.ColorPaletteIcon()
	case model.PageContent:
		return theme.DocumentIcon()
	case model.PageSettings:
		return theme.SettingsIcon()
	default:
		return theme.QuestionIcon()
	}
}
