package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog"

	"github.com/codegod100/libby/internal/config"
	"github.com/codegod100/libby/internal/controller"
	"github.com/codegod100/libby/internal/logger"
)

// AppID identifies the application to the host platform. Preferences are
// stored under it.
const AppID = "com.github.codegod100.libby"

// NewApplication wires settings, view and controller for window w and
// renders the initial state. The returned controller is not running yet.
func NewApplication(a fyne.App, w fyne.Window, log zerolog.Logger) (*RootUI, *controller.Controller) {
	settings := config.NewSettings(a)
	cfg, err := settings.Load()
	if err != nil {
		cl := logger.Component(log, "config")
		cl.Debug().Err(err).Msg("error loading app config, using defaults")
	}

	root := NewRootUI(w, a, logger.Component(log, "ui"))
	ctrl := controller.New(cfg, controller.Options{
		View:   root,
		Store:  settings,
		Logger: logger.Component(log, "controller"),
		Post:   fyne.Do,
	})
	root.Bind(ctrl.Dispatch)
	ctrl.Watch(settings)
	ctrl.Start()
	return root, ctrl
}

// Launch opens the main window and blocks until the application quits.
func Launch(a fyne.App, log zerolog.Logger) {
	loadTranslations()
	a.Settings().SetTheme(NewKawaiiTheme())
	a.SetIcon(AppIcon)

	w := a.NewWindow(Text(KeyAppTitle))
	w.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	w.SetMaster()

	_, ctrl := NewApplication(a, w, log)

	ctx, cancel := context.WithCancel(context.Background())
	a.Lifecycle().SetOnStarted(func() { ctrl.Run(ctx) })
	a.Lifecycle().SetOnStopped(cancel)

	log.Info().Str("app_id", AppID).Msg("window ready")
	w.ShowAndRun()
	cancel()
}
