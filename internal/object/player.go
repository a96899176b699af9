package object

import "github.com/tomz197/skyraid/internal/loop/config"

// PlayerColors maps the number keys to selectable craft colors.
var PlayerColors = map[int]string{
	1: "#FF4757",
	2: "#FFA502",
	3: "#FFD700",
	4: "#2ED573",
	5: "#00D4FF",
	6: "#A55EEA",
	7: "#FF6B81",
	8: "#8B4513",
	9: "#FFFFFF",
}

// Player is the craft at the bottom of the field. It only moves sideways.
type Player struct {
	X, Y  float64
	Color string
}

// NewPlayer creates a craft at the start position.
func NewPlayer(color string) Player {
	if color == "" {
		color = config.DefaultPlayerColor
	}
	return Player{
		X:     config.PlayerStartX,
		Y:     config.PlayerY,
		Color: color,
	}
}

// Move shifts the craft by dx, clamped to the field margins.
func (p *Player) Move(dx float64) {
	p.X = min(max(p.X+dx, config.PlayerMinX), config.PlayerMaxX)
}
