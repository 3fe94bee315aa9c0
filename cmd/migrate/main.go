package main

import (
	"database/sql"
	"errors"
	"hearts-client/pkg/db"
	"time"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := db.Migrate(waitForDB()); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}
}

func waitForDB() *sql.DB {
	timeout := time.NewTimer(time.Second * 10)
	for {
		select {
		case <-timeout.C:
			logrus.Fatal("could not connect to database")
		default:
			if err := db.LoadInstance(); err == nil {
				return db.Instance()
			} else if errors.Is(err, db.ErrNotConfigured) {
				logrus.Fatal("set HEARTS_PG_DSN or pgDsn in the configuration")
			}

			time.Sleep(time.Millisecond * 500)
		}
	}
}
