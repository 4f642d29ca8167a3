package renderer

type UiAction rune

const (
	Unknown     UiAction = iota
	Lunge       UiAction = 32 // ' '
	Quit        UiAction = 81 // 'Q'
	Pause       UiAction = 80 // 'P'
	Edit        UiAction = 69 // 'E'
	NextLevel   UiAction = 78 // 'N'
	PrevLevel   UiAction = 66 // 'B'
	NewGame     UiAction = 71 // 'G'
	AddStage    UiAction = 67 // 'C'
	DeleteStage UiAction = 88 // 'X'
	NextField   UiAction = 9  // tab
	Raise       UiAction = 43 // '+'
	RaiseAlt    UiAction = 61 // '='
	Lower       UiAction = 45 // '-'
	Left        UiAction = 65
	Up          UiAction = 87
	Right       UiAction = 68
	Down        UiAction = 83
	LeftArrow   UiAction = 8592
	UpArrow     UiAction = 8593
	RightArrow  UiAction = 8594
	DownArrow   UiAction = 8595
)

func ProcessInput(rawInput rune) (action UiAction) {
	inputVal := int(rawInput)
	// Convert to UpperCase
	if inputVal >= 97 && inputVal <= 122 {
		inputVal = inputVal - 32
	}
	return UiAction(inputVal)
}

// DecodeKeys splits raw terminal bytes into runes, turning the arrow key
// escape sequences into their arrow runes. Ctrl-C reads as 'q'.
func DecodeKeys(buf []byte) []rune {
	keys := make([]rune, 0, len(buf))
	for i := 0; i < len(buf); i++ {
		switch {
		case buf[i] == 27 && i+2 < len(buf) && buf[i+1] == '[':
			switch buf[i+2] {
			case 'A':
				keys = append(keys, rune(UpArrow))
			case 'B':
				keys = append(keys, rune(DownArrow))
			case 'C':
				keys = append(keys, rune(RightArrow))
			case 'D':
				keys = append(keys, rune(LeftArrow))
			}
			i += 2
		case buf[i] == 3:
			keys = append(keys, 'q')
		default:
			keys = append(keys, rune(buf[i]))
		}
	}
	return keys
}
