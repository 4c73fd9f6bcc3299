package uno

// ActionType names a player action exactly as it appears on the wire.
type ActionType string

const (
	ActionDraw          ActionType = "draw"
	ActionPlayDrawnCard ActionType = "playDrawnCard"
	ActionKeepCard      ActionType = "keepCard"
	ActionNumber        ActionType = "number"
	ActionReverse       ActionType = "reverse"
	ActionSkip          ActionType = "skip"
	ActionDrawTwo       ActionType = "drawTwo"
	ActionWild          ActionType = "wild"
	ActionWildDrawFour  ActionType = "wildDrawFour"
	ActionCatch         ActionType = "catch"
	ActionNotCatch      ActionType = "notCatch"
	ActionSayUno        ActionType = "sayUno"
)

// cardActions maps the play-style actions to the card kind they must carry.
var cardActions = map[ActionType]bool{
	ActionNumber:       true,
	ActionReverse:      true,
	ActionSkip:         true,
	ActionDrawTwo:      true,
	ActionWild:         true,
	ActionWildDrawFour: true,
}

// IsCardAction reports whether t plays a card straight from the hand.
func (t ActionType) IsCardAction() bool {
	return cardActions[t]
}

// Known reports whether t is a recognized action type.
func (t ActionType) Known() bool {
	switch t {
	case ActionDraw, ActionPlayDrawnCard, ActionKeepCard, ActionCatch,
		ActionNotCatch, ActionSayUno:
		return true
	}
	return cardActions[t]
}
