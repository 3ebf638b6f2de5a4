// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps specific key events to editor actions.
type Keymap map[tcell.Key]Action        // For special keys (Enter, Arrows, etc.)
type RuneKeymap map[rune]Action         // For rune bindings in normal mode
type ModKeymap map[tcell.ModMask]Keymap // For keys combined with modifiers (Ctrl, Alt, Shift)

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap     Keymap
	runeKeymap RuneKeymap
	modKeymap  ModKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		runeKeymap: make(RuneKeymap),
		modKeymap:  make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

// loadDefaultBindings sets up the initial key mappings.
func (p *InputProcessor) loadDefaultBindings() {
	// --- Simple Keys ---
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyPgUp] = ActionMovePageUp
	p.keymap[tcell.KeyPgDn] = ActionMovePageDown
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyEnter] = ActionEnter
	p.keymap[tcell.KeyTab] = ActionComplete
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward // Often used for Backspace
	p.keymap[tcell.KeyEscape] = ActionQuit

	// --- Modifier Keys ---
	ctrlMap := make(Keymap)
	ctrlMap[tcell.KeyCtrlQ] = ActionForceQuit
	ctrlMap[tcell.KeyCtrlC] = ActionForceQuit
	ctrlMap[tcell.KeyCtrlL] = ActionRedraw
	ctrlMap[tcell.KeyHome] = ActionMoveFileStart
	ctrlMap[tcell.KeyEnd] = ActionMoveFileEnd
	p.modKeymap[tcell.ModCtrl] = ctrlMap

	// --- Rune Mappings (normal mode only, see ProcessEvent) ---
	p.runeKeymap[':'] = ActionEnterCommandMode
	p.runeKeymap['/'] = ActionEnterFindMode
	p.runeKeymap['n'] = ActionFindNext
	p.runeKeymap['N'] = ActionFindPrevious
	p.runeKeymap['g'] = ActionMoveFileStart
	p.runeKeymap['G'] = ActionMoveFileEnd
	p.runeKeymap['h'] = ActionMoveLeft
	p.runeKeymap['j'] = ActionMoveDown
	p.runeKeymap['k'] = ActionMoveUp
	p.runeKeymap['l'] = ActionMoveRight
}

// ProcessEvent takes a tcell key event and returns the corresponding
// ActionEvent. In a prompt (typing is true) printable runes are always
// inserted instead of looked up in the rune bindings.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey, typing bool) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	runeVal := ev.Rune()

	// 1. Check Modifier + Key combinations
	if modKeyMap, modOk := p.modKeymap[mod]; modOk {
		if action, keyOk := modKeyMap[key]; keyOk {
			return ActionEvent{Action: action}
		}
	}
	// Ctrl+letter keys carry the Ctrl modifier in some terminals
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		if action, ok := p.modKeymap[tcell.ModCtrl][key]; ok {
			return ActionEvent{Action: action}
		}
		mod &^= tcell.ModCtrl
	}

	// 2. Check simple Key mappings
	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	// 3. Runes
	if key == tcell.KeyRune && (mod == tcell.ModNone || mod == tcell.ModShift) {
		if !typing {
			if action, ok := p.runeKeymap[runeVal]; ok {
				return ActionEvent{Action: action, Rune: runeVal}
			}
		}
		return ActionEvent{Action: ActionInsertRune, Rune: runeVal}
	}

	// 4. No mapping found
	return ActionEvent{Action: ActionUnknown}
}
