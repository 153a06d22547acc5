// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux || freebsd
// +build linux freebsd

// Command fbocheck builds an offscreen framebuffer on a headless OpenGL ES
// context and reports whether the driver considers it complete.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/glxbind/glxbind/egl"
	"github.com/glxbind/glxbind/fbo"
	"github.com/glxbind/glxbind/gl"
	"github.com/glxbind/glxbind/glimpl"
)

var (
	width   = flag.Int("width", 256, "framebuffer width")
	height  = flag.Int("height", 256, "framebuffer height")
	verbose = flag.Bool("v", false, "debug logging")
)

func init() {
	// GL calls must stay on the thread the context is current on.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "fbocheck: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	var (
		logger *zap.Logger
		err    error
	)
	if *verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	defer logger.Sync()
	fbo.SetLogger(logger.Named("fbo"))

	ctx, err := egl.NewContext()
	if err != nil {
		return err
	}
	defer ctx.Release()
	if err := ctx.MakeCurrent(); err != nil {
		return err
	}
	defer ctx.ReleaseCurrent()

	f := ctx.Functions()
	logger.Info("context", zap.String("version", f.GetString(gl.VERSION)))
	return check(logger, f, *width, *height)
}

func check(logger *zap.Logger, f *glimpl.Functions, w, h int) error {
	dev := fbo.NewDevice(f)
	fb := dev.Create()
	defer dev.Destroy(fb)
	color := dev.CreateTexture()
	defer dev.DestroyTexture(color)
	depth := dev.CreateRenderbuffer()
	defer dev.DestroyRenderbuffer(depth)

	f.BindTexture(gl.TEXTURE_2D, gl.Texture{V: color.Name()})
	f.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, w, h, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	f.BindTexture(gl.TEXTURE_2D, gl.Texture{})
	f.BindRenderbuffer(gl.RENDERBUFFER, gl.Renderbuffer{V: depth.Name()})
	f.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT16, w, h)
	f.BindRenderbuffer(gl.RENDERBUFFER, gl.Renderbuffer{})

	dev.Bind(fb)
	defer dev.Bind(nil)
	if got := uint32(f.GetInteger(gl.FRAMEBUFFER_BINDING)); got != fb.Name() {
		return fmt.Errorf("framebuffer %d bound, expected %d", got, fb.Name())
	}
	dev.AttachTexture2D(fbo.ColorAttachment0, color, 0)
	dev.AttachRenderbuffer(fbo.DepthAttachment, depth)
	if err := dev.Err(); err != nil {
		return fmt.Errorf("attach: %w", err)
	}
	if err := dev.Status(); err != nil {
		var glErr *gl.Error
		if errors.As(err, &glErr) {
			logger.Warn("framebuffer incomplete", zap.String("status", gl.EnumName(glErr.Code)))
		}
		return err
	}
	logger.Info("framebuffer complete",
		zap.Uint32("framebuffer", fb.Name()),
		zap.Stringer("color", fbo.ColorAttachment0),
		zap.Uint32("texture", color.Name()),
		zap.Stringer("depth", fbo.DepthAttachment),
		zap.Uint32("renderbuffer", depth.Name()),
		zap.Int("width", w), zap.Int("height", h))
	return nil
}
