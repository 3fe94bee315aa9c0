package main

import (
	"context"
	"flag"
	"fmt"
	"hearts-client/internal/config"
	"hearts-client/internal/rng"
	"hearts-client/internal/util"
	"hearts-client/pkg/hearts"
	"hearts-client/pkg/strategy"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
)

var rounds = flag.Int("rounds", 100, "the number of rounds to play")
var seed = flag.Int64("seed", 0, "the seed of the first round, random seeds when 0")
var strategies = flag.String("strategies", "defensive,simple,defensive,simple", "the strategy of each of the four seats")

func main() {
	flag.Parse()

	if lvl, err := logrus.ParseLevel(config.Instance().Log.Level); err == nil {
		logrus.SetLevel(lvl)
	}

	kinds := strings.Split(*strategies, ",")
	names := util.GetRandomNames(len(kinds))
	seats := make(map[string]hearts.Seat, len(names))
	byName := make(map[string]string, len(names))
	for i, name := range names {
		s, err := strategy.New(strings.TrimSpace(kinds[i]), name, logrus.StandardLogger())
		if err != nil {
			logrus.WithError(err).Fatal("could not create strategy")
		}

		seats[name] = s
		byName[name] = s.Name()
	}

	table, err := hearts.NewTable(logrus.StandardLogger(), "sim-"+util.ShortID(), names, seats)
	if err != nil {
		logrus.WithError(err).Fatal("could not seat players")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	moons := make(map[string]int)
	for _, roundSeed := range rng.Seeds(rng.Crypto{}, *seed, *rounds) {
		r, err := table.PlayRound(ctx, roundSeed)
		if err != nil {
			logrus.WithError(err).WithField("seed", roundSeed).Error("round stopped")
			break
		}

		scores := r.Scores()
		if !isMoon(scores) {
			continue
		}

		for name, score := range scores {
			if score == 0 {
				moons[name]++
			}
		}
	}

	totals := table.Totals()
	sort.Slice(names, func(i, j int) bool {
		return totals[names[i]] < totals[names[j]]
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "player\tstrategy\ttotal\taverage\tmoons\n")
	for _, name := range names {
		avg := 0.0
		if table.Rounds() > 0 {
			avg = float64(totals[name]) / float64(table.Rounds())
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%d\n", name, byName[name], totals[name], avg, moons[name])
	}

	_ = w.Flush()
	fmt.Printf("%d rounds played\n", table.Rounds())
}

// isMoon reports whether a single player scored nothing while everyone else took the same positive score
func isMoon(scores map[string]int) bool {
	zero, other := 0, -1
	for _, score := range scores {
		switch {
		case score == 0:
			zero++
		case other == -1:
			other = score
		case score != other:
			return false
		}
	}

	return zero == 1 && other > 0
}
