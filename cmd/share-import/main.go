// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-share/internal/app"
	"github.com/MKhiriev/go-pass-share/internal/config"
	"github.com/MKhiriev/go-pass-share/internal/logger"
	"github.com/MKhiriev/go-pass-share/internal/report"
	"github.com/MKhiriev/go-pass-share/internal/service"
	"github.com/MKhiriev/go-pass-share/internal/store"
	"github.com/MKhiriev/go-pass-share/internal/utils"
	"github.com/MKhiriev/go-pass-share/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	printer := report.NewPrinter(os.Stdout)
	printer.BuildInfo(config.ImportToolName, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetImportConfig(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", app.MsgInvalidConfiguration, err)
		return 1
	}

	log := logger.NewCLILogger(config.ImportToolName, cfg.Log)

	if cfg.VaultPassword == "" {
		password, prompted, err := utils.PromptPassword(os.Stdin, os.Stderr, "Vault password: ")
		if err != nil {
			log.Error().Err(err).Msg("error reading vault password")
			return 1
		}
		if prompted {
			cfg.VaultPassword = password
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, log = log.ForRun(ctx, utils.NewUUIDGenerator().Generate())

	vaults := store.NewVaults(store.Options{Logger: log})
	services := service.NewServices(vaults, log)

	result, err := services.ImportService.Import(ctx, cfg.Request())
	if err != nil {
		log.Error().Err(err).Msg("import failed")
		printer.Failure(err)
		return 1
	}

	printer.Imported(result)
	return 0
}
