// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/indoorjson/config"
	"github.com/katalvlaran/indoorjson/logging"
	"github.com/katalvlaran/indoorjson/server"
	"github.com/katalvlaran/indoorjson/store"
)

func runServe(ctx context.Context, args []string, _ io.Writer) error {
	var cfgPath, envPath string
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfgPath, "config", "", "YAML configuration file")
	fs.StringVar(&envPath, "env", "", ".env file (default .env when present)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	cfg, err := config.Load(cfgPath, envPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	st, err := store.Open(ctx, cfg.Store.Path, logger.Named("store"))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Warn("close store", zap.Error(cerr))
		}
	}()

	srv := server.New(st, logger.Named("http"), server.Options{
		Indent:       cfg.JSON.Indent,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		CORSOrigins:  cfg.Server.CORSOrigins,
	})

	return srv.ListenAndServe(ctx, cfg.Server.Addr, cfg.Server.ShutdownTimeout)
}
