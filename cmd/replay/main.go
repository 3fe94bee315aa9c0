package main

import (
	"context"
	"flag"
	"fmt"
	"hearts-client/internal/config"
	"hearts-client/pkg/db"
	"hearts-client/pkg/deck"
	"hearts-client/pkg/game"
	"hearts-client/pkg/gamelog"
	"hearts-client/pkg/strategy"
	"hearts-client/pkg/wire"
	"os"

	"github.com/sirupsen/logrus"
)

var strategyName = flag.String("strategy", "defensive", "the strategy to replay with")
var player = flag.String("player", "", "the player the snapshots belong to, defaults to the configured player")
var gameID = flag.String("game", "", "replay the decisions recorded in postgres for the game instead of snapshot files")

func main() {
	flag.Parse()
	logrus.SetLevel(logrus.DebugLevel)

	name := *player
	if name == "" {
		name = config.Instance().Player.Name
	}

	if *gameID != "" {
		replayGame(name, *gameID)
		return
	}

	if flag.NArg() == 0 {
		_, _ = fmt.Fprintln(os.Stderr, "usage: replay [-strategy name] [-player name] snapshot.json...")
		os.Exit(2)
	}

	for _, file := range flag.Args() {
		data, err := os.ReadFile(file)
		if err != nil {
			logrus.WithError(err).Fatal("could not read snapshot")
		}

		status, err := wire.DecodeGameStatus(data)
		if err != nil {
			logrus.WithError(err).WithField("file", file).Fatal("could not decode snapshot")
		}

		fmt.Printf("%s: %s\n", file, decide(name, status))
	}
}

func replayGame(name, id string) {
	dbh, err := db.Open(config.Instance().PGDSN)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to database")
	}
	defer dbh.Close()

	records, err := gamelog.NewPostgresRecorder(dbh).Decisions(context.Background(), id)
	if err != nil {
		logrus.WithError(err).Fatal("could not load decisions")
	}

	for _, r := range records {
		if r.Kind == gamelog.KindSnapshot {
			continue
		}

		fmt.Printf("round %d deal %d %s %v (%s): %s\n", r.RoundID(), r.Deal, r.Kind, r.Cards, r.Strategy, decide(name, r.Status))
	}
}

// decide runs a fresh strategy against the snapshot
func decide(name string, status *game.Status) string {
	s, err := strategy.New(*strategyName, name, logrus.StandardLogger())
	if err != nil {
		logrus.WithError(err).Fatal("could not create strategy")
	}

	if status.GameState == game.HeartsPassing {
		return fmt.Sprintf("pass %v", s.PassCards(status))
	}

	card, err := s.PlayCard(status)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	return fmt.Sprintf("play %s", deck.CardToString(card))
}
