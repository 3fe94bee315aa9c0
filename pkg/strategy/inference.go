package strategy

import (
	"hearts-client/pkg/deck"
	"hearts-client/pkg/game"
	"sort"
	"strings"
)

// VoidSuits maps a team name to the suits it is known to be out of
type VoidSuits map[string]deck.SuitSet

// InferVoidSuits scans the completed deals of the round. A participant that did not
// follow the led suit has no cards of that suit left
func InferVoidSuits(status *game.Status) VoidSuits {
	voids := make(VoidSuits, len(status.Participants))
	for _, p := range status.Participants {
		voids[p.TeamName] = 0
	}

	for _, d := range status.Deals {
		suit, ok := d.Suit()
		if !ok {
			continue
		}

		for _, dc := range d.Cards {
			if dc.Card.Suit != suit {
				voids[dc.PlayerName] = voids[dc.PlayerName].With(suit)
			}
		}
	}

	return voids
}

// AnyVoid returns true if one of the players is void in the suit
func (v VoidSuits) AnyVoid(players []string, suit deck.Suit) bool {
	for _, name := range players {
		if v[name].Contains(suit) {
			return true
		}
	}

	return false
}

// Common returns the suits every one of the players is void in.
// No players means no common suits
func (v VoidSuits) Common(players []string) deck.SuitSet {
	if len(players) == 0 {
		return 0
	}

	common := v[players[0]]
	for _, name := range players[1:] {
		common = common.Intersect(v[name])
	}

	return common
}

func (v VoidSuits) String() string {
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + "[" + v[name].String() + "]"
	}

	return strings.Join(parts, " ")
}

// playsLeft returns the participants that still have to play in the in-progress deal.
// The participant whose turn it is does not count
func playsLeft(status *game.Status) []string {
	players := make([]string, 0, len(status.Participants))
	for _, p := range status.Participants {
		if p.HasTurn || status.InProgressDeal.HasPlayed(p.TeamName) {
			continue
		}

		players = append(players, p.TeamName)
	}

	return players
}
