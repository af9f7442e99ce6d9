package main

import (
	"context"
	"github.com/langowen/converter/deploy/config"
	converterApp "github.com/langowen/converter/internal/converter/app"
	"os"
)

func main() {
	cfg := config.NewConfig()

	app := converterApp.NewConverterApp(cfg, os.Stdin, os.Stdout, os.Stderr)

	os.Exit(app.Start(context.Background()))
}
