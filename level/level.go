// Package level describes the static geometry of a maze: obstacles,
// collectibles, teleport zones, the player spawn and the chaser rails.
//
// A Level is loaded once and never mutated by the game loop. Coordinates are
// canvas pixels with the origin in the top-left corner and y growing down.
package level

// Rect is an axis-aligned obstacle rectangle.
type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Point is a real-valued position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vec is an integer position or velocity. Chasers live on the integer grid so
// that their rail triggers can be matched exactly.
type Vec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k int) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Edge names the border a teleport zone watches.
type Edge string

const (
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
	EdgeBottom Edge = "bottom"
)

// Teleport relocates the player once its bounding box crosses Threshold on
// the given Edge. A NextLevel zone does not relocate: it cancels the move and
// signals level completion instead.
type Teleport struct {
	Name      string  `yaml:"name"`
	Edge      Edge    `yaml:"edge"`
	Threshold float64 `yaml:"threshold"`
	Target    Point   `yaml:"target"`
	NextLevel bool    `yaml:"next_level,omitempty"`
}

// Crossed reports whether a box of the given radius centred on p crosses the
// zone's trigger edge.
func (t Teleport) Crossed(p Point, radius float64) bool {
	switch t.Edge {
	case EdgeLeft:
		return p.X-radius < t.Threshold
	case EdgeRight:
		return p.X+radius > t.Threshold
	case EdgeBottom:
		return p.Y+radius > t.Threshold
	}
	return false
}

// Waypoint is one rail trigger. A chaser standing exactly on At takes the
// unit direction Dir (scaled by its speed). Snap, when set, moves the chaser
// before the new direction applies.
type Waypoint struct {
	At   Vec  `yaml:"at"`
	Dir  Vec  `yaml:"dir"`
	Snap *Vec `yaml:"snap,omitempty"`
}

// ChaserSpec is the spawn state and patrol rail of one chaser.
type ChaserSpec struct {
	Name     string     `yaml:"name"`
	Color    string     `yaml:"color"`
	Start    Vec        `yaml:"start"`
	Velocity Vec        `yaml:"velocity"`
	Radius   int        `yaml:"radius"`
	Speed    int        `yaml:"speed"`
	Rail     []Waypoint `yaml:"rail"`
}

// PlayerSpec is the spawn state of the player.
type PlayerSpec struct {
	Start  Point   `yaml:"start"`
	Radius float64 `yaml:"radius"`
	Step   float64 `yaml:"step"`
	Facing string  `yaml:"facing"`
}

// Level is the complete, immutable description of a maze.
type Level struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	Player  PlayerSpec   `yaml:"player"`
	Chasers []ChaserSpec `yaml:"chasers"`

	Obstacles       []Rect     `yaml:"obstacles"`
	Collectibles    []Point    `yaml:"collectibles"`
	CollectibleSize float64    `yaml:"collectible_size"`
	Teleports       []Teleport `yaml:"teleports"`

	// RevertFactor multiplies the attempted step when backing the player out
	// of an obstacle or the next-level zone.
	RevertFactor float64 `yaml:"revert_factor"`
	// CaptureTolerance shrinks each side of a chaser's box before testing it
	// against the player.
	CaptureTolerance float64 `yaml:"capture_tolerance"`

	// The mouth is open while frame%MouthCycle <= MouthOpen.
	MouthCycle int `yaml:"mouth_cycle"`
	MouthOpen  int `yaml:"mouth_open"`
}

// Chaser returns the spec of the named chaser.
func (l *Level) Chaser(name string) (ChaserSpec, bool) {
	for _, c := range l.Chasers {
		if c.Name == name {
			return c, true
		}
	}
	return ChaserSpec{}, false
}
