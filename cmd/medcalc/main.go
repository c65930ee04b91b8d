package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"

	"github.com/leofalp/medcalc/internal/cli"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.App{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Environ: env.ToMap(os.Environ()),
		Version: version,
	}
	code := app.Run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
