package cmd

import (
	"github.com/achilleasa/eglview/log"
	"github.com/urfave/cli"
)

var logger = log.New("eglview")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}

	if ctx.GlobalBool("q") {
		log.SetLevel(log.Warning)
	}
}
