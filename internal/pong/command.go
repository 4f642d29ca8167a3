package pong

// Command is a driver request applied between ticks. Commands travel with the
// recorded input so a replay reproduces them on the same tick.
type Command uint8

const (
	CommandNone Command = iota
	CommandPause
	CommandResume
	CommandEdit
	CommandPlay
	CommandNextLevel
	CommandPrevLevel
	CommandNewGame
	CommandAddStage
	CommandDeleteStage
	CommandNextField
	CommandRaiseField
	CommandLowerField
)

var commandNames = map[Command]string{
	CommandNone:      "",
	CommandPause:     "pause",
	CommandResume:    "resume",
	CommandEdit:      "edit",
	CommandPlay:      "play",
	CommandNextLevel: "next_level",
	CommandPrevLevel: "prev_level",
	CommandNewGame:   "new_game",

	CommandAddStage:    "add_stage",
	CommandDeleteStage: "delete_stage",
	CommandNextField:   "next_field",
	CommandRaiseField:  "raise_field",
	CommandLowerField:  "lower_field",
}

func (c Command) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return "unknown"
}

// ParseCommand maps a command name back to its Command.
func ParseCommand(s string) (Command, bool) {
	for c, name := range commandNames {
		if name == s {
			return c, true
		}
	}
	return CommandNone, false
}

// Apply carries out c. Level changes reload the stage; a new game restarts
// from the intro.
func (g *Game) Apply(c Command) {
	switch c {
	case CommandPause:
		g.SetPaused(true)
	case CommandResume:
		g.SetPaused(false)
	case CommandEdit:
		g.SetMode(ModeEdit)
	case CommandPlay:
		g.SetMode(ModeGame)
	case CommandNextLevel:
		g.NextLevel()
	case CommandPrevLevel:
		g.PrevLevel()
	case CommandNewGame:
		g.NewGame()
		g.SetSequence(IntroSequence())
	case CommandAddStage, CommandDeleteStage, CommandNextField, CommandRaiseField, CommandLowerField:
		g.edit(c)
	}
}
