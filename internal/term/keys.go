package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"snake-rewind/internal/core"
	"snake-rewind/internal/snake"
)

var keyCommands = map[tcell.Key]snake.Command{
	tcell.KeyUp:     snake.Turn(snake.Primary, core.North),
	tcell.KeyDown:   snake.Turn(snake.Primary, core.South),
	tcell.KeyLeft:   snake.Turn(snake.Primary, core.West),
	tcell.KeyRight:  snake.Turn(snake.Primary, core.East),
	tcell.KeyEscape: snake.Do(snake.ActionQuit),
	tcell.KeyCtrlC:  snake.Do(snake.ActionQuit),
}

var runeCommands = map[rune]snake.Command{
	'w': snake.Turn(snake.Secondary, core.North),
	's': snake.Turn(snake.Secondary, core.South),
	'a': snake.Turn(snake.Secondary, core.West),
	'd': snake.Turn(snake.Secondary, core.East),
	' ': snake.Do(snake.ActionTogglePause),
	'b': snake.Do(snake.ActionBackward),
	'f': snake.Do(snake.ActionForward),
	'z': snake.Do(snake.ActionStepBack),
	'r': snake.Do(snake.ActionReset),
	'v': snake.Do(snake.ActionSave),
	'h': snake.Do(snake.ActionOverlay),
}

// Command maps a key event to a world command. Terminals report no key
// release, so space toggles pause on press.
func Command(ev *tcell.EventKey) (snake.Command, bool) {
	if ev.Key() == tcell.KeyRune {
		cmd, ok := runeCommands[unicode.ToLower(ev.Rune())]
		return cmd, ok
	}
	cmd, ok := keyCommands[ev.Key()]
	return cmd, ok
}
