package main

import (
	"os"

	"github.com/achilleasa/eglview/cmd"
	"github.com/achilleasa/eglview/graphics"
	"github.com/achilleasa/eglview/log"
	"github.com/achilleasa/eglview/renderer"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "eglview"
	app.Usage = "render scenes off-screen through EGL and report frame times"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.BoolFlag{
			Name:  "q",
			Usage: "only log warnings and errors",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "view",
			Usage: "render the demo scene in a loop",
			Description: `
Create an off-screen OpenGL context backed by an EGL pbuffer surface and
render the demo scene until interrupted. No display server is required.

Every samples+1 frames the rolling average frame time over the last
samples frames is logged together with the matching FPS value.`,
			Action: cmd.View,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: graphics.DefaultWidth,
					Usage: "viewport width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: graphics.DefaultHeight,
					Usage: "viewport height",
				},
				cli.IntFlag{
					Name:  "pbuffer-width",
					Value: graphics.DefaultPbufferWidth,
					Usage: "off-screen surface width",
				},
				cli.IntFlag{
					Name:  "pbuffer-height",
					Value: graphics.DefaultPbufferHeight,
					Usage: "off-screen surface height",
				},
				cli.IntFlag{
					Name:  "samples",
					Value: renderer.DefaultSamples,
					Usage: "number of frame time samples in the rolling average",
				},
				cli.IntFlag{
					Name:  "frames",
					Value: 0,
					Usage: "stop after rendering this many frames (0 = until interrupted)",
				},
				cli.DurationFlag{
					Name:  "duration",
					Usage: "stop after this much time has elapsed (0 = until interrupted)",
				},
				cli.StringFlag{
					Name:  "clear-color",
					Value: "0.2,0.2,0.4,1.0",
					Usage: "background color as r,g,b[,a]",
				},
				cli.StringFlag{
					Name:  "capture, c",
					Usage: "write the last rendered frame to this png file",
				},
				cli.BoolFlag{
					Name:  "window",
					Usage: "render to a native window instead of an off-screen surface (needs a build with -tags glfw)",
				},
			},
		},
		{
			Name:   "info",
			Usage:  "display EGL version and the configs usable for headless rendering",
			Action: cmd.Info,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New("eglview").Error(err)
		os.Exit(1)
	}
}
