package session

type State int

const (
	AwaitingMenuChoice State = iota
	AwaitingAmount
	Displaying
	Exited
)

func (s State) String() string {
	switch s {
	case AwaitingMenuChoice:
		return "awaiting_menu_choice"
	case AwaitingAmount:
		return "awaiting_amount"
	case Displaying:
		return "displaying"
	case Exited:
		return "exited"
	default:
		return "unknown"
	}
}
