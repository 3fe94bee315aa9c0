package main

import (
	"context"
	"errors"
	"flag"
	"hearts-client/internal/config"
	"hearts-client/internal/mux"
	"hearts-client/pkg/client"
	"hearts-client/pkg/db"
	"hearts-client/pkg/feed"
	"hearts-client/pkg/gamelog"
	"hearts-client/pkg/strategy"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the client version
var Version = "v0.0.0-dev"

var repeat = flag.Bool("repeat", false, "keep playing after the game is over")
var strategyName = flag.String("strategy", "", "the strategy to play with, overrides the configuration ("+strings.Join(strategy.Names(), ", ")+")")
var statusAddr = flag.String("status", "", "the listen address of the status server, overrides the configuration")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	name := cfg.Player.Name
	if name == "" {
		var err error
		if name, err = getInput("Team name"); err != nil || name == "" {
			logrus.Fatal("missing player name")
		}
	}

	password := cfg.Player.Password
	if password == "" {
		if password = getPassword(); password == "" {
			logrus.Fatal("missing password")
		}
	}

	if *strategyName != "" {
		cfg.Strategy = *strategyName
	}

	s, err := strategy.New(cfg.Strategy, name, logrus.StandardLogger())
	if err != nil {
		logrus.WithError(err).Fatal("could not create strategy")
	}

	recorder, err := newRecorder(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("could not set up the game log")
	}

	hub := feed.NewHub(logrus.StandardLogger())
	hub.StartShift()

	if *statusAddr != "" {
		cfg.Status.Addr = *statusAddr
	}

	if cfg.Status.Addr != "" {
		go serveStatus(cfg, hub)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := client.New(logrus.StandardLogger(), s, client.Options{
		Host:          cfg.Server.Host,
		Password:      password,
		PollInterval:  cfg.Server.PollInterval,
		RetryInterval: cfg.Server.RetryInterval,
		Repeat:        cfg.Repeat || *repeat,
	}, recorder, hub)

	logrus.WithFields(logrus.Fields{
		"player":   name,
		"host":     cfg.Server.Host,
		"strategy": s.Name(),
		"version":  Version,
	}).Info("start game")

	err = c.Play(ctx)
	hub.EndShift()

	if err != nil && !errors.Is(err, context.Canceled) {
		logrus.WithError(err).Fatal("client stopped")
	}

	logrus.Info("game over")
}

func newRecorder(cfg config.Config) (gamelog.Recorder, error) {
	var recorders gamelog.MultiRecorder
	if cfg.GameLog.Dir != "" {
		recorders = append(recorders, gamelog.NewFileRecorder(cfg.GameLog.Dir))
	}

	if cfg.PGDSN != "" {
		dbh, err := db.Open(cfg.PGDSN)
		if err != nil {
			return nil, err
		}

		if err := db.Migrate(dbh); err != nil {
			return nil, err
		}

		recorders = append(recorders, gamelog.NewPostgresRecorder(dbh))
	}

	if len(recorders) == 0 {
		return gamelog.NopRecorder{}, nil
	}

	return recorders, nil
}

func serveStatus(cfg config.Config, hub *feed.Hub) {
	srv := &http.Server{
		Addr:         cfg.Status.Addr,
		Handler:      mux.NewMux(Version, hub).Handler(cfg.Log.AccessLogs),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).Info("status server listening")
	if err := srv.ListenAndServe(); err != nil {
		logrus.WithError(err).Error("status server stopped")
	}
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" || strings.ToLower(config.Instance().Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
