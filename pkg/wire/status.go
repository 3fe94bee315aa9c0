package wire

import (
	"encoding/json"
	"fmt"
	"hearts-client/pkg/deck"
	"hearts-client/pkg/game"
	"time"
)

// GameStatus is the snapshot document returned by the game server
type GameStatus struct {
	CurrentGameID          string            `json:"CurrentGameId"`
	CurrentGameState       string            `json:"CurrentGameState"`
	CurrentRoundID         int               `json:"CurrentRoundId"`
	CurrentRoundState      string            `json:"CurrentRoundState"`
	RoundParameters        RoundParameters   `json:"RoundParameters"`
	MyGameState            string            `json:"MyGameState"`
	MyGameStateDescription string            `json:"MyGameStateDescription"`
	MyGameParticipants     []GameParticipant `json:"MyGameParticipants"`
	MyInitialHand          []Card            `json:"MyInitialHand"`
	CardsPassedByMe        []Card            `json:"CardsPassedByMe"`
	CardsPassedToMe        []Card            `json:"CardsPassedToMe"`
	MyFinalHand            []Card            `json:"MyFinalHand"`
	MyCurrentHand          []Card            `json:"MyCurrentHand"`
	MyGameDeals            []Deal            `json:"MyGameDeals"`
	MyInProgressDeal       *Deal             `json:"MyInProgressDeal"`
	IsMyTurn               bool              `json:"IsMyTurn"`
}

// RoundParameters are the per-round settings
type RoundParameters struct {
	RoundID                  int          `json:"RoundId"`
	InitiationPhaseInSeconds int          `json:"InitiationPhaseInSeconds"`
	PassingPhaseInSeconds    int          `json:"PassingPhaseInSeconds"`
	DealingPhaseInSeconds    int          `json:"DealingPhaseInSeconds"`
	FinishingPhaseInSeconds  int          `json:"FinishingPhaseInSeconds"`
	NumberOfCardsTobePassed  int          `json:"NumberOfCardsTobePassed"`
	CardPoints               []CardPoints `json:"CardPoints"`
}

// CardPoints is the point value of a card
type CardPoints struct {
	Card  Card `json:"Card"`
	Point int  `json:"Point"`
}

// GameParticipant is a participant as seen by the server
type GameParticipant struct {
	TeamName            string `json:"TeamName"`
	LeftParticipant     string `json:"LeftParticipant"`
	NumberOfCardsInHand int    `json:"NumberOfCardsInHand"`
	HasTurn             bool   `json:"HasTurn"`
	CurrentScore        int    `json:"CurrentScore"`
}

// Deal is a trick. DealWinner is empty while the deal is in progress
type Deal struct {
	DealNumber int        `json:"DealNumber"`
	Initiator  string     `json:"Initiator,omitempty"`
	SuitType   string     `json:"SuitType"`
	DealCards  []DealCard `json:"DealCards"`
	DealWinner string     `json:"DealWinner,omitempty"`
}

// DealCard is a card played into a deal
type DealCard struct {
	TeamName string `json:"TeamName"`
	Card     Card   `json:"Card"`
}

// DecodeGameStatus parses the snapshot document
func DecodeGameStatus(data []byte) (*game.Status, error) {
	var dto GameStatus
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("could not parse game status: %w", err)
	}

	return dto.Decode()
}

// EncodeGameStatus serializes the snapshot in the server's format
func EncodeGameStatus(status *game.Status) ([]byte, error) {
	return json.MarshalIndent(FromStatus(status), "", "  ")
}

// Decode converts the document to a snapshot
func (g GameStatus) Decode() (*game.Status, error) {
	gameState, err := game.ParseInstanceState(orNotStarted(g.CurrentGameState))
	if err != nil {
		return nil, err
	}

	roundState, err := game.ParseRoundState(orNotStarted(g.CurrentRoundState))
	if err != nil {
		return nil, err
	}

	heartsState, err := game.ParseHeartsState(orNotStarted(g.MyGameState))
	if err != nil {
		return nil, err
	}

	params, err := g.RoundParameters.Decode()
	if err != nil {
		return nil, err
	}

	status := &game.Status{
		CurrentGameID:     g.CurrentGameID,
		CurrentGameState:  gameState,
		CurrentRoundID:    g.CurrentRoundID,
		CurrentRoundState: roundState,
		RoundParameters:   params,
		GameState:         heartsState,
		Participants:      make([]game.Participant, len(g.MyGameParticipants)),
		Deals:             make([]*game.Deal, len(g.MyGameDeals)),
		IsMyTurn:          g.IsMyTurn,
	}

	for i, p := range g.MyGameParticipants {
		status.Participants[i] = game.Participant(p)
	}

	hands := []struct {
		dst *deck.Set
		src []Card
	}{
		{&status.MyInitialHand, g.MyInitialHand},
		{&status.CardsPassedByMe, g.CardsPassedByMe},
		{&status.CardsPassedToMe, g.CardsPassedToMe},
		{&status.MyFinalHand, g.MyFinalHand},
		{&status.MyCurrentHand, g.MyCurrentHand},
	}
	for _, h := range hands {
		if *h.dst, err = decodeCards(h.src); err != nil {
			return nil, err
		}
	}

	for i, d := range g.MyGameDeals {
		if status.Deals[i], err = d.Decode(); err != nil {
			return nil, fmt.Errorf("deal %d: %w", d.DealNumber, err)
		}
	}

	if g.MyInProgressDeal != nil {
		if status.InProgressDeal, err = g.MyInProgressDeal.Decode(); err != nil {
			return nil, fmt.Errorf("in-progress deal: %w", err)
		}
	}

	return status, nil
}

// orNotStarted treats a missing state as not started
func orNotStarted(state string) string {
	if state == "" {
		return "NotStarted"
	}

	return state
}

// Decode converts the wire parameters
func (r RoundParameters) Decode() (game.RoundParameters, error) {
	points := make(map[deck.Card]int, len(r.CardPoints))
	for _, cp := range r.CardPoints {
		c, err := cp.Card.Decode()
		if err != nil {
			return game.RoundParameters{}, fmt.Errorf("card points: %w", err)
		}

		points[c] = cp.Point
	}

	return game.RoundParameters{
		RoundID:                 r.RoundID,
		InitiationPhase:         time.Duration(r.InitiationPhaseInSeconds) * time.Second,
		PassingPhase:            time.Duration(r.PassingPhaseInSeconds) * time.Second,
		DealingPhase:            time.Duration(r.DealingPhaseInSeconds) * time.Second,
		FinishingPhase:          time.Duration(r.FinishingPhaseInSeconds) * time.Second,
		NumberOfCardsToBePassed: r.NumberOfCardsTobePassed,
		CardPoints:              points,
	}, nil
}

// Decode converts the wire deal. The suit is only read once a card has been played
func (d Deal) Decode() (*game.Deal, error) {
	cards := make([]game.DealCard, len(d.DealCards))
	for i, dc := range d.DealCards {
		c, err := dc.Card.Decode()
		if err != nil {
			return nil, err
		}

		cards[i] = game.DealCard{PlayerName: dc.TeamName, Card: c}
	}

	var suit deck.Suit
	if len(cards) > 0 {
		suit = cards[0].Card.Suit
		if d.SuitType != "" {
			var err error
			if suit, err = deck.ParseSuit(d.SuitType); err != nil {
				return nil, err
			}
		}
	}

	return game.NewDeal(d.DealNumber, d.Initiator, suit, cards, d.DealWinner), nil
}

// FromStatus converts a snapshot to its wire form
func FromStatus(s *game.Status) GameStatus {
	g := GameStatus{
		CurrentGameID:      s.CurrentGameID,
		CurrentGameState:   string(s.CurrentGameState),
		CurrentRoundID:     s.CurrentRoundID,
		CurrentRoundState:  string(s.CurrentRoundState),
		RoundParameters:    fromParameters(s.RoundParameters),
		MyGameState:        string(s.GameState),
		MyGameParticipants: make([]GameParticipant, len(s.Participants)),
		MyInitialHand:      encodeSet(s.MyInitialHand),
		CardsPassedByMe:    encodeSet(s.CardsPassedByMe),
		CardsPassedToMe:    encodeSet(s.CardsPassedToMe),
		MyFinalHand:        encodeSet(s.MyFinalHand),
		MyCurrentHand:      encodeSet(s.MyCurrentHand),
		MyGameDeals:        make([]Deal, len(s.Deals)),
		IsMyTurn:           s.IsMyTurn,
	}

	for i, p := range s.Participants {
		g.MyGameParticipants[i] = GameParticipant(p)
	}

	for i, d := range s.Deals {
		g.MyGameDeals[i] = fromDeal(d)
	}

	if s.InProgressDeal != nil {
		d := fromDeal(s.InProgressDeal)
		g.MyInProgressDeal = &d
	}

	return g
}

func fromParameters(r game.RoundParameters) RoundParameters {
	points := make([]CardPoints, 0, len(r.CardPoints))
	for _, c := range deck.All() {
		if p, ok := r.CardPoints[c]; ok {
			points = append(points, CardPoints{Card: EncodeCard(c), Point: p})
		}
	}

	return RoundParameters{
		RoundID:                  r.RoundID,
		InitiationPhaseInSeconds: int(r.InitiationPhase / time.Second),
		PassingPhaseInSeconds:    int(r.PassingPhase / time.Second),
		DealingPhaseInSeconds:    int(r.DealingPhase / time.Second),
		FinishingPhaseInSeconds:  int(r.FinishingPhase / time.Second),
		NumberOfCardsTobePassed:  r.NumberOfCardsToBePassed,
		CardPoints:               points,
	}
}

func fromDeal(d *game.Deal) Deal {
	dto := Deal{
		DealNumber: d.Number,
		Initiator:  d.Initiator,
		DealCards:  make([]DealCard, len(d.Cards)),
	}

	if suit, ok := d.Suit(); ok {
		dto.SuitType = suit.Name()
	}

	if winner, ok := d.Winner(); ok {
		dto.DealWinner = winner
	}

	for i, dc := range d.Cards {
		dto.DealCards[i] = DealCard{TeamName: dc.PlayerName, Card: EncodeCard(dc.Card)}
	}

	return dto
}
