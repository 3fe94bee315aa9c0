package strategy

import (
	"hearts-client/pkg/deck"
	"hearts-client/pkg/game"
	"hearts-client/pkg/wire"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const me = "me"

func cards(s string) deck.Set {
	return deck.NewSet(deck.CardsFromString(s)...)
}

func participants(turn string) []game.Participant {
	names := []string{me, "b", "c", "d"}
	ps := make([]game.Participant, len(names))
	for i, name := range names {
		ps[i] = game.Participant{
			TeamName:        name,
			LeftParticipant: names[(i+1)%len(names)],
			HasTurn:         name == turn,
		}
	}

	return ps
}

// deal builds a deal from alternating player names and cards, e.g. deal(1, "me", "2c", "b", "3c")
func deal(number int, winner string, plays ...string) *game.Deal {
	d := game.NewDeal(number, plays[0], 0, nil, "")
	for i := 0; i < len(plays); i += 2 {
		d.Play(plays[i], deck.CardFromString(plays[i+1]))
	}

	if winner != "" {
		d.Resolve(winner)
	}

	return d
}

func newStatus(hand string, deals []*game.Deal, inProgress *game.Deal) *game.Status {
	return &game.Status{
		CurrentGameID:     "game-1",
		CurrentGameState:  game.InstanceRunning,
		CurrentRoundID:    1,
		CurrentRoundState: game.RoundRunning,
		RoundParameters:   game.DefaultRoundParameters(1),
		GameState:         game.HeartsDealing,
		Participants:      participants(me),
		MyCurrentHand:     cards(hand),
		Deals:             deals,
		InProgressDeal:    inProgress,
		IsMyTurn:          true,
	}
}

func newDefensive() *Defensive {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	return NewDefensive(me, logger)
}

func TestDefensive_PlayCard_twoOfClubs(t *testing.T) {
	a := assert.New(t)

	s := newStatus("2c,14s,12s,14h,13h", nil, game.NewDeal(1, me, 0, nil, ""))
	card, err := newDefensive().PlayCard(s)
	a.NoError(err)
	a.Equal(deck.TwoOfClubs, card)

	// even when another suit was led
	s.InProgressDeal = deal(1, "", "b", "5h")
	card, err = newDefensive().PlayCard(s)
	a.NoError(err)
	a.Equal(deck.TwoOfClubs, card)
}

func TestDefensive_PlayCard_emptyHand(t *testing.T) {
	a := assert.New(t)

	s := newStatus("", nil, nil)
	s.MyCurrentHand = 0
	_, err := newDefensive().PlayCard(s)
	a.ErrorIs(err, ErrNoValidCards)
}

func TestDefensive_PlayCard_ducksUnderKing(t *testing.T) {
	a := assert.New(t)

	deals := []*game.Deal{
		deal(1, "b", me, "2c", "b", "14c", "c", "4c", "d", "5c"),
		deal(2, "b", "b", "9d", "c", "4d", "d", "6c", me, "2d"),
	}

	// d is known to be out of diamonds, so the ace would take whatever d throws in
	s := newStatus("11d,14d,3c,4s,6s", deals, deal(3, "", "b", "5d", "c", "13d"))
	card, err := newDefensive().PlayCard(s)
	a.NoError(err)
	a.Equal(deck.Jack.Of(deck.Diamond), card)
}

func TestDefensive_PlayCard_noPointsAtRisk(t *testing.T) {
	a := assert.New(t)

	// with plenty of diamonds still out, the ace costs nothing and is the worst card to keep
	s := newStatus("11d,14d,3c,4s,6s", nil, deal(1, "", "b", "5d", "c", "13d"))
	card, err := newDefensive().PlayCard(s)
	a.NoError(err)
	a.Equal(deck.Ace.Of(deck.Diamond), card)
}

func TestDefensive_PlayCard_discardsCostliestHeart(t *testing.T) {
	a := assert.New(t)

	s := newStatus("3h,4h,7h,2d", nil, deal(1, "", "b", "5c"))
	card, err := newDefensive().PlayCard(s)
	a.NoError(err)
	a.Equal(deck.Seven.Of(deck.Heart), card)
}

func shooterDeals(firstDeal *game.Deal) []*game.Deal {
	return []*game.Deal{
		firstDeal,
		deal(2, me, "d", "7s", me, "14s", "b", "12s", "c", "8s"),
		deal(3, me, me, "14h", "b", "2h", "c", "3h", "d", "4h"),
		deal(4, me, me, "14d", "b", "2d", "c", "3d", "d", "4d"),
		deal(5, me, me, "13d", "b", "5d", "c", "6d", "d", "7d"),
	}
}

const shooterHand = "13s,3s,9c,10c,5h,6h,8d,9d"

func TestDefensive_PlayCard_soleShooterCollects(t *testing.T) {
	a := assert.New(t)

	deals := shooterDeals(deal(1, "d", me, "2c", "b", "3c", "c", "4c", "d", "5c"))
	s := newStatus(shooterHand, deals, game.NewDeal(6, me, 0, nil, ""))

	name, ok := possibleShooter(s)
	a.True(ok)
	a.Equal(me, name)

	card, err := newDefensive().PlayCard(s)
	a.NoError(err)
	a.Equal(deck.King.Of(deck.Spade), card)
}

func TestDefensive_PlayCard_blocksOpponentShooter(t *testing.T) {
	a := assert.New(t)

	deals := []*game.Deal{
		deal(1, "b", me, "2c", "b", "14c", "c", "4c", "d", "5c"),
		deal(2, "b", "b", "14h", "c", "2h", "d", "3h", me, "4h"),
		deal(3, "b", "b", "13h", "c", "5h", "d", "6h", me, "7h"),
		deal(4, "b", "b", "14s", "c", "12s", "d", "2s", me, "3s"),
	}
	s := newStatus("12h,8h,3d,4d,5d", deals, deal(5, "", "b", "10h"))

	name, ok := possibleShooter(s)
	a.True(ok)
	a.Equal("b", name)

	d := newDefensive()
	card, err := d.PlayCard(s)
	a.NoError(err)
	a.Equal(deck.Queen.Of(deck.Heart), card)
	a.False(d.ShootingTheMoon())
}

func TestDefensive_PlayCard_twoPlayersWithPoints(t *testing.T) {
	a := assert.New(t)

	deals := shooterDeals(deal(1, "d", me, "2c", "b", "3c", "c", "9h", "d", "5c"))
	s := newStatus(shooterHand, deals, game.NewDeal(6, me, 0, nil, ""))

	_, ok := possibleShooter(s)
	a.False(ok)

	d := newDefensive()
	card, err := d.PlayCard(s)
	a.NoError(err)
	a.NotEqual(deck.King.Of(deck.Spade), card)
	a.False(d.ShootingTheMoon())
}

func TestDefensive_PlayCard_followsSuit(t *testing.T) {
	a := assert.New(t)

	s := newStatus("3h,4h,7h,2d,13d", nil, deal(1, "", "b", "5d"))
	card, err := newDefensive().PlayCard(s)
	a.NoError(err)
	a.Equal(deck.Diamond, card.Suit)
}

func TestDefensive_PlayCard_deterministic(t *testing.T) {
	a := assert.New(t)

	deals := []*game.Deal{
		deal(1, "b", me, "2c", "b", "14c", "c", "4c", "d", "5c"),
		deal(2, "b", "b", "9d", "c", "4d", "d", "6c", me, "2d"),
	}

	for i := 0; i < 5; i++ {
		s := newStatus("11d,14d,3c,4s,6s,12h", deals, deal(3, "", "b", "5d"))
		first, err := newDefensive().PlayCard(s)
		a.NoError(err)

		second, err := newDefensive().PlayCard(s)
		a.NoError(err)
		a.Equal(first, second)
	}
}

func passStatus(hand string) *game.Status {
	s := newStatus(hand, nil, nil)
	s.Participants = participants("")
	s.GameState = game.HeartsPassing
	s.MyInitialHand = s.MyCurrentHand
	s.IsMyTurn = false
	return s
}

func TestDefensive_PassCards(t *testing.T) {
	a := assert.New(t)

	s := passStatus("12s,14h,13h,2c,3c,4c,5c,6c,2d,3d,4d,5d,6d")
	d := newDefensive()
	passed := d.PassCards(s)
	a.Equal(deck.CardsFromString("12s,14h,13h"), passed)
	a.False(d.ShootingTheMoon())
}

func TestDefensive_PassCards_sameRound(t *testing.T) {
	a := assert.New(t)

	d := newDefensive()
	d.PassCards(passStatus("14h,13h,12h,11h,14s,13s,14c,14d,2c,3d,4d,5d,2s"))
	a.True(d.ShootingTheMoon())

	// same round id, weak hand
	passed := d.PassCards(passStatus("12s,14h,13h,2c,3c,4c,5c,6c,2d,3d,4d,5d,6d"))
	a.Equal(deck.CardsFromString("12s,14h,13h"), passed)
	a.False(d.ShootingTheMoon())
}

func TestDefensive_PassCards_shooting(t *testing.T) {
	a := assert.New(t)

	s := passStatus("14h,13h,12h,11h,14s,13s,14c,14d,2c,3d,4d,5d,2s")
	d := newDefensive()
	passed := d.PassCards(s)
	a.Equal(deck.CardsFromString("2c,2s,3d"), passed)
	a.True(d.ShootingTheMoon())

	// a new round starts over
	s = passStatus("12s,14h,13h,2c,3c,4c,5c,6c,2d,3d,4d,5d,6d")
	s.CurrentRoundID = 2
	d.PassCards(s)
	a.False(d.ShootingTheMoon())
}

func TestDefensive_PassCards_cardinality(t *testing.T) {
	a := assert.New(t)

	d := deck.New()
	for seed := int64(1); seed <= 25; seed++ {
		d.Shuffle(seed)
		var hand deck.Set
		for i := 0; i < 13; i++ {
			c, err := d.Draw()
			a.NoError(err)
			hand = hand.With(c)
		}

		s := passStatus("")
		s.MyInitialHand = hand
		s.MyCurrentHand = hand

		passed := newDefensive().PassCards(s)
		a.Len(passed, 3)
		a.Equal(3, deck.NewSet(passed...).Len())
		for _, c := range passed {
			a.True(hand.Contains(c))
		}
	}
}

func TestScore(t *testing.T) {
	a := assert.New(t)

	x := Score{Definite: 0, Potential: 1000, Later: -2000, Rank: -14}
	y := Score{Definite: 0, Potential: 1000, Later: -1000, Rank: -2}
	a.Equal(-1, x.Compare(y))
	a.Equal(1, y.Compare(x))
	a.Equal(0, x.Compare(x))

	a.Equal(Score{Definite: -500, Potential: -1000, Later: 2000, Rank: -14}, Score{500, -1000, -2000, -14}.Invert())
	a.Equal("  0.000,   1.000,  -2.000, -14", x.String())

	c1 := CardScore{Card: deck.CardFromString("2h"), Score: x}
	c2 := CardScore{Card: deck.CardFromString("2c"), Score: x}
	a.True(c2.Less(c1))
	a.False(c1.Less(c2))
}

func TestThousandths(t *testing.T) {
	a := assert.New(t)

	a.Equal(333, thousandths(float32(1)/3))
	a.Equal(-666, thousandths(-float32(2)/3))
	a.Equal(13000, thousandths(13))
	a.Equal(0, thousandths(0.0004))
}

func TestNew(t *testing.T) {
	a := assert.New(t)

	s, err := New("defensive", me, nil)
	a.NoError(err)
	a.Equal("defensive", s.Name())
	a.Equal(me, s.PlayerName())
	_, ok := s.(Shooter)
	a.True(ok)

	s, err = New("simple", me, nil)
	a.NoError(err)
	a.Equal("simple", s.Name())

	_, err = New("aggressive", me, nil)
	a.ErrorIs(err, ErrUnknownStrategy)
}

func TestDefensive_PlayCard_fixtures(t *testing.T) {
	tests := []struct {
		name string
		want deck.Card
	}{
		{"jack of diamonds", deck.Jack.Of(deck.Diamond)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join("testdata", test.name+".json"))
			require.NoError(t, err)

			status, err := wire.DecodeGameStatus(data)
			require.NoError(t, err)

			card, err := NewDefensive("FlyingBirds", nil).PlayCard(status)
			assert.NoError(t, err)
			assert.Equal(t, test.want, card)
		})
	}
}
