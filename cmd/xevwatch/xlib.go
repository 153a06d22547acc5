// SPDX-License-Identifier: Unlicense OR MIT

//go:build (linux && !android && !nox11) || freebsd || openbsd
// +build linux,!android,!nox11 freebsd openbsd

package main

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sys/unix"

	"github.com/glxbind/glxbind/xevent"
	"github.com/glxbind/glxbind/xevent/xlib"
)

type xlibSource struct {
	*xlib.Display
	// wakeR and wakeW are the ends of a pipe written to by wake.
	wakeR, wakeW int
}

func openXlib(name string) (source, error) {
	var p [2]int
	if err := unix.Pipe(p[:]); err != nil {
		return nil, fmt.Errorf("x11: wake pipe: %w", err)
	}
	d, err := xlib.Open(name)
	if err != nil {
		unix.Close(p[0])
		unix.Close(p[1])
		return nil, err
	}
	return &xlibSource{Display: d, wakeR: p[0], wakeW: p[1]}, nil
}

func (s *xlibSource) Close() {
	s.Display.Close()
	unix.Close(s.wakeR)
	unix.Close(s.wakeW)
}

func (s *xlibSource) createWindow(width, height int) (xevent.Window, error) {
	return s.CreateWindow(width, height), nil
}

func (s *xlibSource) destroyWindow(w xevent.Window) {
	s.DestroyWindow(w)
}

// wait blocks in poll on the X connection until it is readable, timeout
// passes or wake is called.
func (s *xlibSource) wait(timeout time.Duration) error {
	s.Flush()
	pollfds := []unix.PollFd{
		{Fd: int32(s.Fd()), Events: unix.POLLIN | unix.POLLERR},
		{Fd: int32(s.wakeR), Events: unix.POLLIN},
	}
	n, err := unix.Poll(pollfds, int(timeout/time.Millisecond))
	if err != nil && err != unix.EINTR {
		return fmt.Errorf("x11: poll failed: %w", err)
	}
	if n > 0 && pollfds[0].Revents&(unix.POLLERR|unix.POLLHUP) != 0 {
		return errors.New("x11: connection closed")
	}
	return nil
}

// wake leaves a byte in the pipe, so every later wait returns at once.
func (s *xlibSource) wake() {
	unix.Write(s.wakeW, []byte{0})
}
