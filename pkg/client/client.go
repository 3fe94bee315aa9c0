package client

import (
	"context"
	"errors"
	"fmt"
	"hearts-client/pkg/deck"
	"hearts-client/pkg/feed"
	"hearts-client/pkg/game"
	"hearts-client/pkg/gamelog"
	"hearts-client/pkg/strategy"
	"hearts-client/pkg/wire"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Options configures the client
type Options struct {
	Host          string
	Password      string
	PollInterval  time.Duration
	RetryInterval time.Duration
	Repeat        bool
	HTTPClient    *http.Client
}

// Publisher receives every decision the client makes
type Publisher interface {
	Publish(e *feed.Event)
}

type nopPublisher struct{}

func (nopPublisher) Publish(*feed.Event) {}

// Client polls the game server and answers with the decisions of its strategy
type Client struct {
	opts       Options
	baseURL    string
	httpClient *http.Client
	strategy   strategy.Strategy
	recorder   gamelog.Recorder
	publisher  Publisher

	tracker       *activityTracker
	currentGameID string
	running       bool

	logger logrus.FieldLogger
}

// New returns a client playing as the strategy's player
func New(logger logrus.FieldLogger, s strategy.Strategy, opts Options, recorder gamelog.Recorder, publisher Publisher) *Client {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	if recorder == nil {
		recorder = gamelog.NopRecorder{}
	}

	if publisher == nil {
		publisher = nopPublisher{}
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: time.Second * 10}
	}

	logger = logger.WithField("player", s.PlayerName())
	return &Client{
		opts:       opts,
		baseURL:    fmt.Sprintf("http://%s/api/participant", opts.Host),
		httpClient: httpClient,
		strategy:   s,
		recorder:   recorder,
		publisher:  publisher,
		tracker:    newActivityTracker(logger),
		logger:     logger,
	}
}

// Play waits for the server and plays until the game is over, or forever with Repeat.
// It returns nil once the game is over, the context's error when cancelled and
// strategy.ErrNoValidCards when the strategy has nothing to play
func (c *Client) Play(ctx context.Context) error {
	c.running = true
	if err := c.waitForServer(ctx); err != nil {
		return err
	}

	for c.running {
		if err := c.cycle(ctx); err != nil {
			if errors.Is(err, strategy.ErrNoValidCards) {
				return err
			}

			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			c.logger.WithError(err).Error("unexpected failure")
		}

		if !c.running {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.opts.PollInterval):
		}
	}

	return nil
}

func (c *Client) waitForServer(ctx context.Context) error {
	for {
		err := c.ping(ctx)
		if err == nil {
			return nil
		}

		c.logger.WithError(err).WithField("url", c.baseURL).Info("trying to connect to server")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.opts.RetryInterval):
		}
	}
}

// cycle runs one poll of the game status and reacts to it
func (c *Client) cycle(ctx context.Context) error {
	data, err := c.getGameStatus(ctx)
	if err != nil {
		return err
	}

	status, err := wire.DecodeGameStatus(data)
	if err != nil {
		return err
	}

	c.setCurrentGameID(status.CurrentGameID)
	c.tracker.update(fmt.Sprintf("Game State - %s", status.CurrentGameState))

	log := c.logger.WithFields(logrus.Fields{
		"cycle":   uuid.New().String(),
		"gameID":  status.CurrentGameID,
		"roundID": status.CurrentRoundID,
	})

	switch status.CurrentGameState {
	case game.InstanceOpen:
		return c.onGameOpen(ctx, log)
	case game.InstanceFinished, game.InstanceCancelled:
		if !c.opts.Repeat {
			c.running = false
		}
	case game.InstanceRunning:
		return c.onGameRunning(ctx, log, status)
	}

	return nil
}

func (c *Client) setCurrentGameID(gameID string) {
	if c.currentGameID == gameID {
		return
	}

	c.tracker.clear()
	c.currentGameID = gameID
}

func (c *Client) onGameOpen(ctx context.Context, log logrus.FieldLogger) error {
	const key = "JoinGame"
	if c.tracker.has(key) {
		return nil
	}

	if err := c.join(ctx); err != nil {
		return fmt.Errorf("could not join game: %w", err)
	}

	log.Info("join successful")
	c.tracker.add(key)
	return nil
}

func (c *Client) onGameRunning(ctx context.Context, log logrus.FieldLogger, status *game.Status) error {
	if status.CurrentRoundID <= 0 {
		return nil
	}

	c.tracker.update(fmt.Sprintf("Round %d - %s", status.CurrentRoundID, status.CurrentRoundState))

	switch status.CurrentRoundState {
	case game.RoundRunning:
		return c.onRoundRunning(ctx, log, status)
	case game.RoundFinished:
		key := fmt.Sprintf("Final - Round %d", status.CurrentRoundID)
		if c.tracker.has(key) {
			return nil
		}

		if err := c.record(ctx, gamelog.KindSnapshot, status, nil); err != nil {
			return err
		}

		c.tracker.add(key)
	}

	return nil
}

func (c *Client) onRoundRunning(ctx context.Context, log logrus.FieldLogger, status *game.Status) error {
	c.tracker.update(fmt.Sprintf("My game - Round %d %s", status.CurrentRoundID, status.GameState))

	switch status.GameState {
	case game.HeartsPassing:
		return c.onPassing(ctx, log, status)
	case game.HeartsDealing:
		return c.onDealing(ctx, log, status)
	}

	return nil
}

func (c *Client) onPassing(ctx context.Context, log logrus.FieldLogger, status *game.Status) error {
	key := fmt.Sprintf("Passing - Round %d", status.CurrentRoundID)
	if c.tracker.has(key) {
		return nil
	}

	n := status.RoundParameters.NumberOfCardsToBePassed
	log.WithField("count", n).Info("cards need to be passed to the left")

	cards := c.strategy.PassCards(status)
	if err := c.postPassCards(ctx, wire.EncodeCards(cards)); err != nil {
		return fmt.Errorf("could not pass cards: %w", err)
	}

	log.WithField("cards", joinCards(cards)).Info("cards passed successfully")
	c.tracker.add(key)
	c.publish(gamelog.KindPass, status, cards)
	return c.record(ctx, gamelog.KindPass, status, cards)
}

func (c *Client) onDealing(ctx context.Context, log logrus.FieldLogger, status *game.Status) error {
	if !status.IsMyTurn {
		return nil
	}

	dealNumber := status.DealNumber()
	key := fmt.Sprintf("Dealing - Round %d Deal %d", status.CurrentRoundID, dealNumber)
	if c.tracker.has(key) {
		return nil
	}

	card, err := c.strategy.PlayCard(status)
	if err != nil {
		return err
	}

	if err := c.postPlayCard(ctx, wire.EncodeCard(card)); err != nil {
		return fmt.Errorf("could not play %s: %w", card, err)
	}

	log.WithField("dealNumber", dealNumber).WithField("card", card.String()).Info("played successfully")
	c.tracker.add(key)
	c.publish(gamelog.KindPlay, status, []deck.Card{card})
	return c.record(ctx, gamelog.KindPlay, status, []deck.Card{card})
}

func (c *Client) shooting() bool {
	if s, ok := c.strategy.(strategy.Shooter); ok {
		return s.ShootingTheMoon()
	}

	return false
}

func (c *Client) publish(kind gamelog.Kind, status *game.Status, cards []deck.Card) {
	c.publisher.Publish(feed.NewEvent(string(kind), c.strategy.Name(), status, cards, c.shooting()))
}

func (c *Client) record(ctx context.Context, kind gamelog.Kind, status *game.Status, cards []deck.Card) error {
	if err := c.recorder.Record(ctx, gamelog.NewRecord(kind, c.strategy.Name(), status, cards)); err != nil {
		return fmt.Errorf("could not record %s: %w", kind, err)
	}

	return nil
}

func joinCards(cards []deck.Card) string {
	s := make([]string, len(cards))
	for i, card := range cards {
		s[i] = card.String()
	}

	return strings.Join(s, ", ")
}
