package game

import (
	"fmt"

	"github.com/plus3/chomp/level"
)

// Direction is one of the four steering inputs.
type Direction uint8

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Unit returns the unit vector of d.
func (d Direction) Unit() level.Point {
	switch d {
	case DirLeft:
		return level.Point{X: -1}
	case DirRight:
		return level.Point{X: 1}
	case DirUp:
		return level.Point{Y: -1}
	case DirDown:
		return level.Point{Y: 1}
	}
	return level.Point{}
}

// Facing returns the player orientation steering in d produces.
func (d Direction) Facing() Facing {
	switch d {
	case DirLeft:
		return FacingLeft
	case DirUp:
		return FacingUp
	case DirDown:
		return FacingDown
	}
	return FacingRight
}

// Facing is the player's last commanded orientation.
type Facing uint8

const (
	FacingRight Facing = iota
	FacingLeft
	FacingUp
	FacingDown
)

func (f Facing) String() string {
	switch f {
	case FacingRight:
		return "right"
	case FacingLeft:
		return "left"
	case FacingUp:
		return "up"
	case FacingDown:
		return "down"
	}
	return fmt.Sprintf("Facing(%d)", uint8(f))
}

// ParseFacing maps a level facing name to a Facing. Unknown names face right.
func ParseFacing(s string) Facing {
	switch s {
	case "left":
		return FacingLeft
	case "up":
		return FacingUp
	case "down":
		return FacingDown
	}
	return FacingRight
}

// CommandKind distinguishes the commands a host can apply between frames.
type CommandKind uint8

const (
	CommandSteer CommandKind = iota
	CommandReset
)

// Command is a host input applied between frames.
type Command struct {
	Kind CommandKind
	Dir  Direction
}

// Steer returns a steering command.
func Steer(d Direction) Command {
	return Command{Kind: CommandSteer, Dir: d}
}

// Restart returns a command that resets the session.
func Restart() Command {
	return Command{Kind: CommandReset}
}

func (c Command) String() string {
	if c.Kind == CommandReset {
		return "reset"
	}
	return "steer " + c.Dir.String()
}
