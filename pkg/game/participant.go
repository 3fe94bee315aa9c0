package game

// Participant is a team taking part in the game
type Participant struct {
	TeamName            string
	LeftParticipant     string
	NumberOfCardsInHand int
	HasTurn             bool
	CurrentScore        int
}
