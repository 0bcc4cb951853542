package terminal

// CursorStyle selects the cursor shape via DECSCUSR
// Values match the escape sequence parameter directly
type CursorStyle uint8

const (
	CursorDefault           CursorStyle = 0
	CursorBlinkingBlock     CursorStyle = 1
	CursorSteadyBlock       CursorStyle = 2
	CursorBlinkingUnderline CursorStyle = 3
	CursorSteadyUnderline   CursorStyle = 4
	CursorBlinkingBar       CursorStyle = 5
	CursorSteadyBar         CursorStyle = 6
)

// String returns the style name for diagnostics
func (s CursorStyle) String() string {
	switch s {
	case CursorDefault:
		return "default"
	case CursorBlinkingBlock:
		return "blinking-block"
	case CursorSteadyBlock:
		return "steady-block"
	case CursorBlinkingUnderline:
		return "blinking-underline"
	case CursorSteadyUnderline:
		return "steady-underline"
	case CursorBlinkingBar:
		return "blinking-bar"
	case CursorSteadyBar:
		return "steady-bar"
	default:
		return "unknown"
	}
}
