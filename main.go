// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"context"

	"github.com/mpeters/go-imap-sweeper/config"
	"github.com/mpeters/go-imap-sweeper/domain"
	"github.com/mpeters/go-imap-sweeper/imapconnection"
	"github.com/mpeters/go-imap-sweeper/liststore"
	"github.com/mpeters/go-imap-sweeper/log"
	"github.com/mpeters/go-imap-sweeper/metrics"
	"github.com/mpeters/go-imap-sweeper/persistence"
	"github.com/mpeters/go-imap-sweeper/sweeper"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

func main() {
	log.InitLogging("debug")
	logger := log.Logger(log.LOG_MAIN)

	conf, err := config.ReadConfig("config.toml")
	if err != nil {
		logger.WithField("error", err).Fatal("Could not load config")
	}

	if conf.Loglevel != nil {
		log.SetLogLevel(*conf.Loglevel)
	}

	p, err := persistence.NewPersistence(conf.Database)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not connect to database")
	}
	defer p.Close()

	var props domain.PropertyStore = p
	if conf.RedisURL != "" {
		redisProps, err := liststore.NewRedisPropertyStore(conf.RedisURL)
		if err != nil {
			logger.WithField("error", err).Fatal("Could not connect to redis")
		}
		props = redisProps
	}
	lists := liststore.NewStore(props)

	imapConn, err := imapconnection.NewImapConnection(conf.ImapHost, conf.User, conf.Password)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not start imap connector")
	}
	defer imapConn.Close()

	var collector metrics.Collector = &metrics.NoopCollector{}
	if conf.MetricsListen != "" {
		registry := prometheus.NewRegistry()
		collector = metrics.NewPrometheusCollector(registry)

		metricsServer := metrics.NewPrometheusServer(conf.MetricsListen, "/metrics", registry)
		metricsCtx, stopMetrics := context.WithCancel(context.Background())
		defer stopMetrics()
		go func() {
			err := metricsServer.Start(metricsCtx)
			if err != nil {
				logger.WithField("error", err).Error("Metrics server failed")
			}
		}()
		defer func() {
			err := metricsServer.Shutdown(context.Background())
			if err != nil {
				logger.WithField("error", err).Warn("Could not shut down metrics server")
			}
		}()
		logger.WithField("listen", conf.MetricsListen).Info("Serving metrics")
	}

	configs := []sweeper.ConfigFunc{}
	if conf.DryRun {
		configs = append(configs, sweeper.DryRun())
	}

	if conf.ReportAndRemove {
		configs = append(configs, sweeper.ReportAndRemove())
		if conf.SpamFolder != "" {
			configs = append(configs, sweeper.FallbackSpamFolder(conf.SpamFolder))
		}
	}
	if conf.MoveSpam {
		configs = append(configs, sweeper.MoveSpam(conf.SpamFolder))
	}

	configs = append(
		configs,
		sweeper.MaxItems(conf.MaxItemsPerRun),
		sweeper.MaxMessageSize(uint32(conf.MaxMessageSizeBytes)),
		sweeper.Lookback(conf.LookbackDays),
		sweeper.ProcessedMarker(conf.ProcessedMarker),
	)

	sw, err := sweeper.NewSweeper(p, lists, imapConn, collector, configs...)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not start sweeper")
	}

	logger.WithFields(logrus.Fields{"folders": conf.CheckFolders, "dryrun": conf.DryRun, "spamfolder": conf.SpamFolder}).Info("Sweeping folders for spam")
	if conf.DryRun {
		logger.Warn("Skipping removing & moving due to dry-run")
	}
	err = sw.Run(conf.CheckFolders)
	if err != nil {
		logger.WithField("error", err).Fatal("Sweeping failed")
	}
}
