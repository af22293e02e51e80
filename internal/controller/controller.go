// Package controller drives the event loop: every UI event becomes a
// model.Message, goes through model.Update, has its effects executed and
// ends with a render.
package controller

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/codegod100/libby/internal/config"
	"github.com/codegod100/libby/internal/model"
	"github.com/codegod100/libby/internal/platform"
)

// TickInterval drives the animation clock, about 60 frames per second.
const TickInterval = 16 * time.Millisecond

// View renders state and performs host calls.
type View interface {
	Render(s *model.State)
	SetTitle(page model.Page)
	OpenURL(u *url.URL) error
}

// Store persists configuration.
type Store interface {
	Save(cfg config.Config) error
}

// Watcher reports configuration changes made outside the controller.
type Watcher interface {
	Watch(fn func(config.Config, error))
}

// Options configures a Controller. View, Store and Post are required.
type Options struct {
	View   View
	Store  Store
	Logger zerolog.Logger
	// Post runs fn on the UI goroutine. With Fyne this is fyne.Do.
	Post func(fn func())
	// Now defaults to time.Now.
	Now func() time.Time
	// FallbackOpen is tried when View.OpenURL fails. Defaults to
	// platform.OpenURL.
	FallbackOpen func(raw string) error
	// TickInterval defaults to TickInterval.
	TickInterval time.Duration
}

// Controller owns the application state. Dispatch must only be called on
// the UI goroutine.
type Controller struct {
	state        *model.State
	view         View
	store        Store
	log          zerolog.Logger
	post         func(fn func())
	now          func() time.Time
	fallbackOpen func(raw string) error
	interval     time.Duration

	wg sync.WaitGroup
}

// New creates a controller starting from cfg.
func New(cfg config.Config, opts Options) *Controller {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.FallbackOpen == nil {
		opts.FallbackOpen = platform.OpenURL
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = TickInterval
	}

	return &Controller{
		state:        model.NewState(cfg, opts.Now()),
		view:         opts.View,
		store:        opts.Store,
		log:          opts.Logger,
		post:         opts.Post,
		now:          opts.Now,
		fallbackOpen: opts.FallbackOpen,
		interval:     opts.TickInterval,
	}
}

// State returns the live state. Callers must not mutate it.
func (c *Controller) State() *model.State {
	return c.state
}

// Start renders the initial state and sets the window title.
func (c *Controller) Start() {
	c.view.SetTitle(c.state.Page)
	c.view.Render(c.state)
}

// Dispatch applies msg and renders the result.
func (c *Controller) Dispatch(msg model.Message) {
	if _, tick := msg.(model.Tick); !tick {
		c.log.Debug().Str("message", fmt.Sprintf("%T", msg)).Msg("dispatch")
	}

	fx := model.Update(c.state, msg)
	c.apply(fx)
	c.view.Render(c.state)
}

// Send posts msg to the UI goroutine. Safe from any goroutine.
func (c *Controller) Send(msg model.Message) {
	c.post(func() { c.Dispatch(msg) })
}

func (c *Controller) apply(fx model.Effects) {
	if fx.Notice != "" {
		c.log.Info().Msg(fx.Notice)
	}
	if fx.SaveConfig {
		if err := c.store.Save(c.state.Config); err != nil {
			c.log.Debug().Err(err).Msg("config save failed")
		}
	}
	if fx.OpenURL != "" {
		c.openURL(fx.OpenURL)
	}
	if fx.UpdateTitle {
		c.view.SetTitle(c.state.Page)
	}
}

func (c *Controller) openURL(raw string) {
	u, err := platform.ParseURL(raw)
	if err != nil {
		c.log.Error().Err(err).Str("url", raw).Msg("failed to open url")
		return
	}
	if err = c.view.OpenURL(u); err == nil {
		return
	}
	c.log.Debug().Err(err).Str("url", raw).Msg("host could not open url, trying OS handler")

	if err := c.fallbackOpen(raw); err != nil {
		c.log.Error().Err(err).Str("url", raw).Msg("failed to open url")
	}
}

// Watch subscribes to configuration changes. Load errors are logged and the
// fallback configuration is applied anyway.
func (c *Controller) Watch(w Watcher) {
	w.Watch(func(cfg config.Config, err error) {
		if err != nil {
			c.log.Debug().Err(err).Msg("app config error")
		}
		c.Send(model.UpdateConfig{Config: cfg})
	})
}

// Run starts the animation ticker and the background listener. Both stop
// when ctx is cancelled; Wait blocks until they have.
func (c *Controller) Run(ctx context.Context) {
	c.wg.Add(2)
	go c.tick(ctx)
	go c.listen(ctx)
}

// Wait blocks until the goroutines started by Run have returned.
func (c *Controller) Wait() {
	c.wg.Wait()
}

func (c *Controller) tick(ctx context.Context) {
	defer c.wg.Done()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case at := <-ticker.C:
			c.Send(model.Tick{At: at})
		}
	}
}

// listen emits a single message and then idles until shutdown.
func (c *Controller) listen(ctx context.Context) {
	defer c.wg.Done()

	select {
	case <-ctx.Done():
		return
	default:
	}
	c.Send(model.SubscriptionChannel{})
	<-ctx.Done()
}
