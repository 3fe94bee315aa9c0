package hearts

import (
	"hearts-client/internal/rng"
	"hearts-client/pkg/deck"
	"hearts-client/pkg/game"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	playerCount  = 4
	cardsPerHand = 13
)

// Round is a single round of hearts: a deal of 13 cards to each of four players,
// the passing phase and 13 deals
type Round struct {
	gameID  string
	roundID int
	seed    int64
	params  game.RoundParameters
	state   game.HeartsState
	players []*Player
	byName  map[string]*Player

	deals   []*game.Deal
	current *game.Deal
	turn    int

	logger logrus.FieldLogger
}

// NewRound deals a new round. Players are seated in order, each passing to the next one
func NewRound(logger logrus.FieldLogger, players []*Player, opts Options) (*Round, error) {
	if len(players) != playerCount {
		return nil, PlayerCountError(len(players))
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	gameID := opts.GameID
	if gameID == "" {
		gameID = uuid.New().String()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = rng.Seed(rng.Crypto{})
	}

	d := deck.New()
	d.Shuffle(seed)

	r := &Round{
		gameID:  gameID,
		roundID: opts.Parameters.RoundID,
		seed:    d.GetSeed(),
		params:  opts.Parameters,
		state:   game.HeartsPassing,
		players: players,
		byName:  make(map[string]*Player, len(players)),
		logger: logger.WithFields(logrus.Fields{
			"gameID":  gameID,
			"roundID": opts.Parameters.RoundID,
		}),
	}

	for _, p := range players {
		r.byName[p.Name] = p
		p.hand, p.initial, p.final, p.passedBy, p.passedTo, p.won = 0, 0, 0, 0, 0, 0
		p.passed = false
	}

	for i := 0; i < cardsPerHand; i++ {
		for _, p := range players {
			card, err := d.Draw()
			if err != nil {
				return nil, err
			}

			p.hand = p.hand.With(card)
		}
	}

	for _, p := range players {
		p.initial = p.hand
	}

	r.logger.WithField("seed", r.seed).Debug("dealt round")

	if r.params.NumberOfCardsToBePassed <= 0 {
		r.startDealing()
	}

	return r, nil
}

// Seed returns the seed used to shuffle the deck
func (r *Round) Seed() int64 {
	return r.seed
}

// State returns the state of the round
func (r *Round) State() game.HeartsState {
	return r.state
}

// IsOver returns true after the last deal
func (r *Round) IsOver() bool {
	return r.state == game.HeartsFinished
}

// Players returns the players in seating order
func (r *Round) Players() []*Player {
	return append([]*Player{}, r.players...)
}

// CurrentTurn returns the player who must play next, if cards are being played
func (r *Round) CurrentTurn() (*Player, bool) {
	if r.state != game.HeartsDealing {
		return nil, false
	}

	return r.players[r.turn], true
}

func (r *Round) player(name string) (*Player, error) {
	p, ok := r.byName[name]
	if !ok {
		return nil, ErrUnknownPlayer
	}

	return p, nil
}

func (r *Round) left(i int) *Player {
	return r.players[(i+1)%len(r.players)]
}

// PassCards records the cards the player passes to the player on their left.
// Once every player has passed the cards change hands and the first deal starts
func (r *Round) PassCards(name string, cards []deck.Card) error {
	if r.state != game.HeartsPassing {
		return ErrPassingIsOver
	}

	p, err := r.player(name)
	if err != nil {
		return err
	}

	if p.passed {
		return ErrAlreadyPassed
	}

	if len(cards) != r.params.NumberOfCardsToBePassed {
		return PassCountError{Expected: r.params.NumberOfCardsToBePassed, Got: len(cards)}
	}

	var pass deck.Set
	for _, c := range cards {
		if !p.hand.Contains(c) {
			return ErrCardNotInPlayersHand
		}

		if pass.Contains(c) {
			return ErrCannotPassTheSameCard
		}

		pass = pass.With(c)
	}

	p.passedBy = pass
	p.passed = true
	r.logger.WithField("player", name).WithField("cards", pass.String()).Debug("player passed cards")

	for _, other := range r.players {
		if !other.passed {
			return nil
		}
	}

	for i, from := range r.players {
		to := r.left(i)
		to.passedTo = from.passedBy
	}

	for _, p := range r.players {
		p.hand = p.hand.Minus(p.passedBy).Union(p.passedTo)
	}

	r.startDealing()
	return nil
}

func (r *Round) startDealing() {
	for i, p := range r.players {
		p.final = p.hand
		if p.hand.Contains(deck.TwoOfClubs) {
			r.turn = i
		}
	}

	r.state = game.HeartsDealing
	r.current = game.NewDeal(1, r.players[r.turn].Name, 0, nil, "")
}

// PlayCard plays the card into the in-progress deal
func (r *Round) PlayCard(name string, card deck.Card) error {
	switch r.state {
	case game.HeartsPassing:
		return ErrPassingInProgress
	case game.HeartsFinished:
		return ErrRoundIsOver
	}

	p, err := r.player(name)
	if err != nil {
		return err
	}

	if r.players[r.turn] != p {
		return ErrIsNotPlayersTurn
	}

	if !p.hand.Contains(card) {
		return ErrCardNotInPlayersHand
	}

	if len(r.deals) == 0 && len(r.current.Cards) == 0 && card != deck.TwoOfClubs {
		return ErrMustLeadTwoOfClubs
	}

	if suit, ok := r.current.Suit(); ok && card.Suit != suit && !p.hand.OfSuit(suit).IsEmpty() {
		return ErrPlayOnSuit
	}

	if err := p.playerDidPlayCard(card); err != nil {
		return err
	}

	r.current.Play(name, card)
	r.turn = (r.turn + 1) % len(r.players)

	if len(r.current.Cards) == len(r.players) {
		r.resolveDeal()
	}

	return nil
}

func (r *Round) resolveDeal() {
	best, _ := r.current.WinningCard()
	winner := r.byName[best.PlayerName]

	r.current.Resolve(winner.Name)
	winner.won = winner.won.Union(r.current.CardSet())
	r.deals = append(r.deals, r.current)

	r.logger.WithFields(logrus.Fields{
		"deal":   r.current.Number,
		"winner": winner.Name,
		"cards":  r.current.CardSet().String(),
	}).Debug("deal resolved")

	if len(r.deals) == cardsPerHand {
		r.current = nil
		r.state = game.HeartsFinished
		return
	}

	for i, p := range r.players {
		if p == winner {
			r.turn = i
		}
	}

	r.current = game.NewDeal(len(r.deals)+1, winner.Name, 0, nil, "")
}

// Scores returns the points each player took this round. A player that took every
// shooting card scores nothing and everybody else takes the full amount
func (r *Round) Scores() map[string]int {
	var shootingCards deck.Set
	for _, c := range deck.All() {
		if (c.Suit == deck.Heart || c == deck.QueenOfSpades) && r.params.Points(c) > 0 {
			shootingCards = shootingCards.With(c)
		}
	}

	moon := r.params.SumPoints(shootingCards)
	scores := make(map[string]int, len(r.players))
	for _, p := range r.players {
		if !shootingCards.IsEmpty() && p.won.Intersect(shootingCards) == shootingCards {
			for _, other := range r.players {
				scores[other.Name] = moon
			}

			scores[p.Name] = 0
			return scores
		}

		scores[p.Name] = r.params.SumPoints(p.won)
	}

	return scores
}

// Status returns the snapshot of the round as seen by the player
func (r *Round) Status(name string) (*game.Status, error) {
	p, err := r.player(name)
	if err != nil {
		return nil, err
	}

	turn, dealing := r.CurrentTurn()

	roundState := game.RoundRunning
	if r.state == game.HeartsFinished {
		roundState = game.RoundFinished
	}

	s := &game.Status{
		CurrentGameID:     r.gameID,
		CurrentGameState:  game.InstanceRunning,
		CurrentRoundID:    r.roundID,
		CurrentRoundState: roundState,
		RoundParameters:   r.params,
		GameState:         r.state,
		Participants:      make([]game.Participant, len(r.players)),
		MyInitialHand:     p.initial,
		CardsPassedByMe:   p.passedBy,
		CardsPassedToMe:   p.passedTo,
		MyFinalHand:       p.final,
		MyCurrentHand:     p.hand,
		Deals:             make([]*game.Deal, len(r.deals)),
		IsMyTurn:          dealing && turn == p,
	}

	for i, other := range r.players {
		s.Participants[i] = game.Participant{
			TeamName:            other.Name,
			LeftParticipant:     r.left(i).Name,
			NumberOfCardsInHand: other.hand.Len(),
			HasTurn:             dealing && turn == other,
			CurrentScore:        other.total,
		}
	}

	for i, d := range r.deals {
		s.Deals[i] = copyDeal(d)
	}

	if r.current != nil {
		s.InProgressDeal = copyDeal(r.current)
	}

	return s, nil
}

func copyDeal(d *game.Deal) *game.Deal {
	suit, _ := d.Suit()
	winner, _ := d.Winner()
	return game.NewDeal(d.Number, d.Initiator, suit, append([]game.DealCard{}, d.Cards...), winner)
}
