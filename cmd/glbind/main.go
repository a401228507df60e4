// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command glbind opens a window, uploads a small mesh through the gl
// package, and runs a frame loop that surfaces driver errors and
// applies configuration changes live.
package main

import (
	"log/slog"
	"os"
	"runtime"

	"cogentcore.org/glbind/grog"
	"github.com/urfave/cli/v2"
)

func init() {
	// GLFW and OpenGL calls must all be made on the main thread
	runtime.LockOSThread()
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "glbind",
		Usage: "scoped GPU resource binding demo",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "vv", Usage: "show debug messages"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "show info messages"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only show errors"},
		},
		Before: func(c *cli.Context) error {
			grog.UserLevel = grog.LevelFromFlags(c.Bool("vv"), c.Bool("verbose"), c.Bool("quiet"))
			grog.SetDefaultLogger()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "open a window and upload a mesh",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "TOML or YAML config `file`, reloaded on change"},
					&cli.IntFlag{Name: "frames", Usage: "exit after `N` frames (0 runs until the window is closed)"},
				},
				Action: func(c *cli.Context) error {
					return run(c.Context, c.String("config"), c.Int("frames"))
				},
			},
			{
				Name:  "config",
				Usage: "write the default config",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "glbind.toml", Usage: "output `file`; .yaml or .yml writes YAML"},
				},
				Action: func(c *cli.Context) error {
					return writeConfig(c.String("out"))
				},
			},
		},
	}
}
