package camera

import rl "github.com/gen2brain/raylib-go/raylib"

// Mode is the interaction mode selected for a frame.
type Mode int

const (
	ModeFree Mode = iota
	ModeMoveRotate
	ModePan
	ModeZoom
)

// Modes lists every mode in declaration order.
var Modes = []Mode{ModeFree, ModeMoveRotate, ModePan, ModeZoom}

func (m Mode) String() string {
	switch m {
	case ModeFree:
		return "Free"
	case ModeMoveRotate:
		return "MoveRotate"
	case ModePan:
		return "Pan"
	case ModeZoom:
		return "Zoom"
	default:
		return "Unknown"
	}
}

// Movement magnitude needed to leave Free, and to stay in MoveRotate.
const (
	moveEnterDeadzone   = 0.01
	moveReleaseDeadzone = 0.1
)

// SelectMode picks the mode for this frame from the previous mode and the
// current input. Rules are checked in order and the first match wins:
//
//	Free:       movement or an unmodified rotate press enters MoveRotate
//	MoveRotate: kept while rotating, moving or sprinting
//	otherwise:  rotate+pan -> Pan, rotate+zoom -> Zoom, else Free
func SelectMode(prev Mode, in Input) Mode {
	move := rl.Vector2Length(in.Move)

	switch prev {
	case ModeFree:
		if move > moveEnterDeadzone || (in.RotateHeld && !in.PanModifier && !in.ZoomModifier) {
			return ModeMoveRotate
		}
	case ModeMoveRotate:
		if in.RotateHeld || move > moveReleaseDeadzone || in.Sprint {
			return ModeMoveRotate
		}
	}

	switch {
	case in.RotateHeld && in.PanModifier:
		return ModePan
	case in.RotateHeld && in.ZoomModifier:
		return ModeZoom
	}
	return ModeFree
}
