// SPDX-License-Identifier: Unlicense OR MIT

// Command xevwatch subscribes an X window to a set of event categories and
// logs every event decoded for it.
//
// Usage:
//
//	xevwatch [-config file.toml] [-backend xlib|xgb] [-display :0] [-window id] [-mask Exposure,KeyPress]
//
// Without -window, xevwatch creates and watches its own window.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/glxbind/glxbind/xevent"
	"github.com/glxbind/glxbind/xevent/xgbconn"
)

var (
	configPath = flag.String("config", "", "TOML configuration file")
	backend    = flag.String("backend", "", "connection backend (xlib, xgb)")
	display    = flag.String("display", "", "X display, defaults to $DISPLAY")
	window     = flag.String("window", "", "window id to watch (decimal or 0x hex), default creates a window")
	mask       = flag.String("mask", "", "comma separated event mask bits, for example Exposure,KeyPress")
	verbose    = flag.Bool("v", false, "debug logging")
)

// source is an event connection with a way to sleep until it may have
// events. wake interrupts a wait in progress, or the next one, and is safe
// to call from any goroutine.
type source interface {
	xevent.Conn
	createWindow(width, height int) (xevent.Window, error)
	destroyWindow(w xevent.Window)
	wait(timeout time.Duration) error
	wake()
	Close()
}

func main() {
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "xevwatch: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	conf, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(&conf); err != nil {
		return err
	}
	bits, err := conf.validate()
	if err != nil {
		return err
	}
	logger, err := newLogger(*verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()
	xgbconn.SetLogger(logger.Named("xgbconn"))

	src, err := openSource(conf)
	if err != nil {
		return err
	}
	defer src.Close()

	win := xevent.Window(conf.Window)
	if win == xevent.None {
		if win, err = src.createWindow(320, 240); err != nil {
			return err
		}
		defer src.destroyWindow(win)
		logger.Info("created window", zap.Uint32("window", uint32(win)))
	}
	xevent.SetEventMask(src, win, bits)
	logger.Info("watching",
		zap.String("backend", conf.Backend),
		zap.Uint32("window", uint32(win)),
		zap.Strings("mask", conf.Mask))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return run(ctx, logger, src, win, conf.interval())
}

// run watches win until ctx is done or the connection fails. Cancellation
// wakes the watcher at once instead of at the end of its current wait.
func run(ctx context.Context, logger *zap.Logger, src source, win xevent.Window, interval time.Duration) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return watch(ctx, logger, src, win, interval)
	})
	g.Go(func() error {
		<-ctx.Done()
		src.wake()
		return nil
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func applyFlags(conf *config) error {
	if *backend != "" {
		conf.Backend = *backend
	}
	if *display != "" {
		conf.Display = *display
	}
	if *window != "" {
		id, err := strconv.ParseUint(*window, 0, 32)
		if err != nil {
			return fmt.Errorf("invalid -window %q: %w", *window, err)
		}
		conf.Window = uint32(id)
	}
	if *mask != "" {
		conf.Mask = strings.Split(*mask, ",")
	}
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func openSource(conf config) (source, error) {
	switch conf.Backend {
	case "xgb":
		c, err := xgbconn.Dial(conf.Display)
		if err != nil {
			return nil, err
		}
		return newXGBSource(c), nil
	default:
		return openXlib(conf.Display)
	}
}

// watch drains the events queued for win, then waits for more, until ctx is
// done.
func watch(ctx context.Context, logger *zap.Logger, src source, win xevent.Window, interval time.Duration) error {
	for {
		for e := xevent.PollNextEvent(src, win); e != nil; e = xevent.PollNextEvent(src, win) {
			logEvent(logger, e)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := src.wait(interval); err != nil {
			return err
		}
	}
}

func logEvent(logger *zap.Logger, e *xevent.Event) {
	fields := []zap.Field{
		zap.Stringer("event", xevent.DecodeEventType(e)),
		zap.Uint32("window", uint32(e.Window)),
		zap.Uint64("serial", e.Serial),
	}
	if e.SendEvent {
		fields = append(fields, zap.Bool("send_event", true))
	}
	if e.Type == xevent.ClientMessage {
		fields = append(fields, zap.Uint32("message_type", uint32(e.MessageType)), zap.Int32("format", e.Format))
	}
	logger.Info("event", fields...)
}

type xgbSource struct {
	*xgbconn.Conn
	woken    chan struct{}
	wakeOnce sync.Once
}

func newXGBSource(c *xgbconn.Conn) *xgbSource {
	return &xgbSource{Conn: c, woken: make(chan struct{})}
}

func (s *xgbSource) createWindow(width, height int) (xevent.Window, error) {
	w, err := s.CreateWindow(width, height)
	if err != nil {
		return xevent.None, err
	}
	if err := s.SetTitle(w, "xevwatch"); err != nil {
		s.DestroyWindow(w)
		return xevent.None, err
	}
	return w, nil
}

func (s *xgbSource) destroyWindow(w xevent.Window) {
	s.DestroyWindow(w)
}

// wait sleeps for timeout; xgb reads the connection on its own goroutine and
// offers no descriptor to poll.
func (s *xgbSource) wait(timeout time.Duration) error {
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case <-s.woken:
	case <-t.C:
	}
	return nil
}

func (s *xgbSource) wake() {
	s.wakeOnce.Do(func() { close(s.woken) })
}
