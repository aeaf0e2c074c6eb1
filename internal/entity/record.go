package entity

// Record is a serializable snapshot of a GameState, used for persistence and
// for comparing states.
type Record struct {
	ID           string                          `json:"id"`
	StartingTeam Team                            `json:"starting_team,omitempty"`
	Turn         Team                            `json:"turn,omitempty"`
	Winner       Team                            `json:"winner,omitempty"`
	Surrendered  bool                            `json:"surrendered,omitempty"`
	Squares      []SquareRecord                  `json:"squares"`
	Stacks       map[Team][]StackRecord          `json:"stacks"`
	Score        map[Team]map[OnlineCardType]int `json:"score"`
	Terminal     map[Team]TerminalRecord         `json:"terminal"`
	Moves        []MoveSpec                      `json:"moves"`
}

// SquareRecord describes a grid square holding a card or a firewall.
type SquareRecord struct {
	Location Location    `json:"location"`
	Card     *CardRecord `json:"card,omitempty"`
	Firewall Team        `json:"firewall,omitempty"`
}

type CardRecord struct {
	ID          int            `json:"id"`
	Type        OnlineCardType `json:"type"`
	Owner       Team           `json:"owner"`
	Revealed    bool           `json:"revealed,omitempty"`
	LineBoosted bool           `json:"line_boosted,omitempty"`
}

type StackRecord struct {
	Card  CardRecord `json:"card"`
	Cause StackCause `json:"cause"`
}

type TerminalRecord struct {
	LineBoost  Location `json:"line_boost"`
	Firewall   Location `json:"firewall"`
	NotFound   bool     `json:"not_found,omitempty"`
	VirusCheck bool     `json:"virus_check,omitempty"`
}

func newCardRecord(card *Card) CardRecord {
	return CardRecord{
		ID:          card.ID(),
		Type:        card.Type(),
		Owner:       card.Owner(),
		Revealed:    card.Revealed(),
		LineBoosted: card.LineBoosted(),
	}
}

// Record snapshots the state under the given id.
func (that *GameState) Record(id string) Record {
	record := Record{
		ID:           id,
		StartingTeam: that.startingTeam,
		Turn:         that.turn,
		Winner:       that.winner,
		Surrendered:  that.surrendered,
		Squares:      []SquareRecord{},
		Stacks:       make(map[Team][]StackRecord, len(Teams)),
		Score:        make(map[Team]map[OnlineCardType]int, len(Teams)),
		Terminal:     make(map[Team]TerminalRecord, len(Teams)),
		Moves:        make([]MoveSpec, 0, len(that.moves)),
	}

	for _, square := range that.board.Grid().Squares() {
		if square.IsEmpty() && square.Firewall() == NoTeam {
			continue
		}

		squareRecord := SquareRecord{Location: square.Location(), Firewall: square.Firewall()}
		if card := square.Card(); card != nil {
			cardRecord := newCardRecord(card)
			squareRecord.Card = &cardRecord
		}

		record.Squares = append(record.Squares, squareRecord)
	}

	for _, team := range Teams {
		stacks := []StackRecord{}
		for _, stacked := range that.board.StackArea(team) {
			stacks = append(stacks, StackRecord{Card: newCardRecord(stacked.Card()), Cause: stacked.Cause()})
		}

		record.Stacks[team] = stacks
		record.Score[team] = map[OnlineCardType]int{
			Link:  that.score[team][Link],
			Virus: that.score[team][Virus],
		}

		terminal := that.terminal[team]
		record.Terminal[team] = TerminalRecord{
			LineBoost:  that.squareLocation(terminal.LineBoost),
			Firewall:   that.squareLocation(terminal.Firewall),
			NotFound:   terminal.NotFound,
			VirusCheck: terminal.VirusCheck,
		}
	}

	for _, move := range that.moves {
		record.Moves = append(record.Moves, move.Spec())
	}

	return record
}

func (that *GameState) squareLocation(id SquareID) Location {
	if square := that.board.Square(id); square != nil {
		return square.Location()
	}

	return NullLocation
}
