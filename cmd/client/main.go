// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/bakery-orders/internal/adapter"
	"github.com/MKhiriev/bakery-orders/internal/logger"
	"github.com/MKhiriev/bakery-orders/internal/utils"
)

const role = "bakery-client"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fs := flag.NewFlagSet(role, flag.ExitOnError)
	address := fs.String("a", "localhost:5000", "bakery server address")
	timeout := fs.Duration("t", 10*time.Second, "request timeout")
	level := fs.String("l", "warn", "log level")
	showVersion := fs.Bool("v", false, "print client build info and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] <command> [args]\n\nFlags:\n", role)
		fs.PrintDefaults()
		fmt.Fprint(fs.Output(), usage)
	}
	_ = fs.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
			orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
		return
	}

	log := logger.NewConsoleLogger(role, *level)

	api, err := adapter.NewHTTPServerAdapter(*address, *timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = utils.WithTraceID(ctx, utils.NewTraceID())

	c := &cli{api: api, out: os.Stdout}
	if err = c.run(ctx, fs.Args()); err != nil {
		stop()
		log.Fatal().Err(err).Msg("command failed")
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
