package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 2, int(Two))
	assert.Equal(t, 10, int(Ten))
	assert.Equal(t, 11, int(Jack))
	assert.Equal(t, 12, int(Queen))
	assert.Equal(t, 13, int(King))
	assert.Equal(t, 14, int(Ace))

	assert.True(t, Club < Diamond)
	assert.True(t, Diamond < Heart)
	assert.True(t, Heart < Spade)
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "2♡", Two.Of(Heart).String())
	assert.Equal(t, "J♣", Jack.Of(Club).String())
	assert.Equal(t, "Q♢", Queen.Of(Diamond).String())
	assert.Equal(t, "K♠", King.Of(Spade).String())
	assert.Equal(t, "T♠", Ten.Of(Spade).String())
	assert.Equal(t, "A♠", Ace.Of(Spade).String())
}

func TestAll(t *testing.T) {
	a := assert.New(t)

	cards := All()
	a.Len(cards, 52)

	seen := make(map[Card]bool)
	for _, c := range cards {
		a.False(seen[c], "duplicate card %s", c)
		seen[c] = true
	}

	a.Equal(Two.Of(Club), cards[0])
	a.Equal(Ace.Of(Club), cards[12])
	a.Equal(Two.Of(Diamond), cards[13])
	a.Equal(Ace.Of(Spade), cards[51])
}

func TestCard_Compare(t *testing.T) {
	a := assert.New(t)
	cards := All()

	for i, x := range cards {
		// irreflexive
		a.False(x.Less(x))
		a.Equal(0, x.Compare(x))

		for j, y := range cards {
			// total and consistent with the canonical listing
			a.Equal(i < j, x.Less(y), "%s < %s", x, y)
			a.Equal(-y.Compare(x), x.Compare(y))
		}
	}

	// transitive
	for _, x := range cards {
		for _, y := range cards {
			if !x.Less(y) {
				continue
			}

			for _, z := range cards {
				if y.Less(z) {
					a.True(x.Less(z))
				}
			}
		}
	}

	// suit dominates rank
	a.True(Ace.Of(Club).Less(Two.Of(Diamond)))
	a.True(Ace.Of(Heart).Less(Two.Of(Spade)))
}

func TestParseSuit(t *testing.T) {
	a := assert.New(t)
	for _, suit := range Suits {
		parsed, err := ParseSuit(suit.Name())
		a.NoError(err)
		a.Equal(suit, parsed)
	}

	_, err := ParseSuit("Hearts")
	a.ErrorIs(err, ErrInvalidSuit)

	_, err = ParseSuit("")
	a.ErrorIs(err, ErrInvalidSuit)
}

func TestParseRank(t *testing.T) {
	a := assert.New(t)
	for _, rank := range Ranks {
		parsed, err := ParseRank(rank.Symbol())
		a.NoError(err)
		a.Equal(rank, parsed)
	}

	for _, bad := range []string{"1", "11", "T", "01", "j", ""} {
		_, err := ParseRank(bad)
		a.ErrorIs(err, ErrInvalidRank, bad)
	}

	r, err := RankFromNumber(14)
	a.NoError(err)
	a.Equal(Ace, r)

	_, err = RankFromNumber(1)
	a.ErrorIs(err, ErrInvalidRank)
	_, err = RankFromNumber(15)
	a.ErrorIs(err, ErrInvalidRank)
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)
	a.Equal(Ace.Of(Spade), CardFromString("14s"))
	a.Equal(Ten.Of(Heart), CardFromString("10H"))
	a.Equal([]Card{Two.Of(Club), Queen.Of(Spade)}, CardsFromString("2c,12s"))
	a.Equal([]Card{}, CardsFromString(""))
	a.Equal("12s", CardToString(QueenOfSpades))

	a.Panics(func() {
		CardFromString("15s")
	})
	a.Panics(func() {
		CardFromString("1c")
	})
}
