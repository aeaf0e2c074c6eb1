package game

import "github.com/rocketscienceinc/rainet-engine/internal/entity"

// TerminalEffect reports a terminal card installed, uninstalled or consumed,
// either by the move itself or as a side effect of it.
type TerminalEffect struct {
	Type      entity.TerminalCardType `json:"type"`
	Team      entity.Team             `json:"team"`
	Uninstall bool                    `json:"uninstall,omitempty"`
}

// StackDelta is one entry appended to a stack area.
type StackDelta struct {
	Owner   entity.Team              `json:"owner"`
	Stacked entity.StackedOnlineCard `json:"-"`
}

// Capture tells which team captured which card type from whom.
type Capture struct {
	Subject entity.Team           `json:"subject"`
	Object  entity.Team           `json:"object"`
	Type    entity.OnlineCardType `json:"type"`
}

// Infiltration tells whose server was entered.
type Infiltration struct {
	ServerTeam entity.Team `json:"server_team"`
}

// Result describes the effects of an accepted move.
type Result struct {
	Terminal       []TerminalEffect `json:"terminal"`
	DeltaStackArea []StackDelta     `json:"delta_stack_area,omitempty"`
	Capture        *Capture         `json:"capture,omitempty"`
	Server         *Infiltration    `json:"server,omitempty"`
	Winner         entity.Team      `json:"winner,omitempty"`
}

func newResult() *Result {
	return &Result{Terminal: []TerminalEffect{}}
}

func (that *Result) addTerminal(kind entity.TerminalCardType, team entity.Team, uninstall bool) {
	that.Terminal = append(that.Terminal, TerminalEffect{Type: kind, Team: team, Uninstall: uninstall})
}

func (that *Result) addStacked(owner entity.Team, stacked entity.StackedOnlineCard) {
	that.DeltaStackArea = append(that.DeltaStackArea, StackDelta{Owner: owner, Stacked: stacked})
}
