// Command streetpath serves shortest-path queries over a street network
// loaded from GeoJSON.
//
// Usage:
//
//	streetpath [-config streetpath.hcl] [-data streets.geojson] [-env .env]
//
// Settings come from defaults, the HCL file, the .env file and the
// STREETPATH_* environment variables, in increasing precedence. The -data
// flag overrides all of them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/streetpath/builder"
	"github.com/katalvlaran/streetpath/config"
	"github.com/katalvlaran/streetpath/geoio"
	"github.com/katalvlaran/streetpath/server"
	"github.com/katalvlaran/streetpath/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, loads the configuration and serves until ctx is done.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	flagSet := flag.NewFlagSet("streetpath", flag.ContinueOnError)
	flagSet.SetOutput(stdout)
	configFlag := flagSet.String("config", "", "Path to an HCL configuration file.")
	dataFlag := flagSet.String("data", "", "GeoJSON FeatureCollection to load at startup.")
	envFlag := flagSet.String("env", ".env", "Path to a dotenv file; missing files are ignored.")
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}

		return err
	}

	env, err := config.EnvLookup(*envFlag)
	if err != nil {
		return err
	}
	cfg, err := config.Load(*configFlag, env)
	if err != nil {
		return err
	}
	if *dataFlag != "" {
		cfg.DataFile = *dataFlag
	}

	log := cfg.Logger(stderr)
	slog.SetDefault(log)

	sess := session.New(
		session.WithLogger(log),
		session.WithFrontier(cfg.FrontierKind()),
		session.WithBuildOptions(builder.WithDefaultLabel(cfg.DefaultLabel)),
	)
	if cfg.DataFile != "" {
		lines, err := geoio.LoadFile(cfg.DataFile)
		if err != nil {
			return err
		}
		if _, err := sess.Load(lines); err != nil {
			return err
		}
	}

	gin.SetMode(gin.ReleaseMode)
	srv := server.New(sess,
		server.WithLogger(log),
		server.WithCORSOrigins(cfg.CORSOrigins...),
		server.WithMaxUploadBytes(cfg.MaxUploadBytes),
		server.WithTrace(cfg.TraceEnabled),
	)

	return srv.Run(ctx, cfg.Addr)
}
