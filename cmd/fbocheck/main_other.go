// SPDX-License-Identifier: Unlicense OR MIT

//go:build !linux && !freebsd
// +build !linux,!freebsd

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "fbocheck: headless EGL contexts are only supported on Linux and FreeBSD")
	os.Exit(1)
}
