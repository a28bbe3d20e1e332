package level

// Classic returns the original maze. Every coordinate is level data: the
// obstacle rectangles are the collision geometry, and the rail triggers are
// the only thing steering the chasers, so none of them may drift.
func Classic() *Level {
	return &Level{
		Name:   "classic",
		Width:  500,
		Height: 500,
		Player: PlayerSpec{
			Start:  Point{X: 30, Y: 30},
			Radius: 10,
			Step:   2,
			Facing: "right",
		},
		Chasers: []ChaserSpec{
			{
				Name:     "blue",
				Color:    "blue",
				Start:    Vec{X: 467, Y: 459},
				Velocity: Vec{X: -1, Y: 0},
				Radius:   8,
				Speed:    1,
				Rail:     blueRail(),
			},
			{
				Name:     "red",
				Color:    "red",
				Start:    Vec{X: 467, Y: 28},
				Velocity: Vec{X: -1, Y: 0},
				Radius:   8,
				Speed:    1,
				Rail:     redRail(),
			},
			{
				Name:     "yellow",
				Color:    "yellow",
				Start:    Vec{X: 28, Y: 457},
				Velocity: Vec{X: 1, Y: 0},
				Radius:   8,
				Speed:    1,
				Rail:     yellowRail(),
			},
		},
		Obstacles:       classicObstacles(),
		Collectibles:    classicCollectibles(),
		CollectibleSize: 5,
		Teleports: []Teleport{
			{Name: "left", Edge: EdgeLeft, Threshold: 1, Target: Point{X: 475, Y: 238}},
			{Name: "right", Edge: EdgeRight, Threshold: 499, Target: Point{X: 15, Y: 238}},
			{Name: "exit", Edge: EdgeBottom, Threshold: 500, Target: Point{X: 30, Y: 30}, NextLevel: true},
		},
		RevertFactor:     2.5,
		CaptureTolerance: 3,
		MouthCycle:       20,
		MouthOpen:        10,
	}
}

var (
	left  = Vec{X: -1, Y: 0}
	right = Vec{X: 1, Y: 0}
	up    = Vec{X: 0, Y: -1}
	down  = Vec{X: 0, Y: 1}
)

func at(x, y int, dir Vec) Waypoint {
	return Waypoint{At: Vec{X: x, Y: y}, Dir: dir}
}

func snap(x, y int, dir Vec, sx, sy int) Waypoint {
	return Waypoint{At: Vec{X: x, Y: y}, Dir: dir, Snap: &Vec{X: sx, Y: sy}}
}

func blueRail() []Waypoint {
	return []Waypoint{
		at(380, 459, up),
		at(380, 358, left),
		at(329, 358, up),
		at(329, 187, left),
		at(168, 187, down),
		at(168, 239, left),
		at(109, 239, down),
		at(109, 347, left),
		at(27, 347, down),
		at(27, 397, right),
		at(57, 397, down),
		at(57, 457, left),
		snap(27, 457, right, 27, 456),
		at(118, 456, up),
		at(118, 417, right),
		at(168, 417, down),
		at(168, 478, right),
		at(325, 478, up),
		at(325, 418, right),
		at(378, 418, up),
		at(378, 352, right),
		at(466, 352, down),
		at(466, 352, down),
		at(466, 397, left),
		at(436, 397, down),
		at(436, 460, right),
		snap(467, 460, left, 467, 459),
	}
}

func redRail() []Waypoint {
	return []Waypoint{
		at(277, 28, down),
		at(277, 77, left),
		at(107, 77, up),
		at(107, 28, left),
		at(28, 28, down),
		at(28, 130, right),
		at(107, 130, down),
		at(107, 239, right),
		at(166, 239, down),
		at(166, 295, right),
		at(327, 295, up),
		at(327, 238, right),
		at(387, 238, up),
		at(387, 130, right),
		at(468, 130, up),
		at(468, 78, left),
		// The second entry for (278,78) overrides the first.
		at(278, 78, down),
		at(278, 78, up),
		at(278, 27, right),
		snap(469, 27, left, 467, 28),
	}
}

func yellowRail() []Waypoint {
	return []Waypoint{
		at(117, 457, up),
		at(117, 358, right),
		at(207, 418, down),
		at(207, 358, down),
		at(207, 417, right),
		at(287, 417, up),
		at(287, 358, right),
		at(326, 358, up),
		at(326, 238, right),
		at(387, 238, up),
		at(387, 28, left),
		at(277, 28, down),
		at(277, 77, left),
		at(217, 77, up),
		at(217, 28, left),
		at(28, 28, down),
		at(28, 130, right),
		at(107, 130, down),
		at(107, 349, left),
		at(28, 349, down),
		at(28, 397, right),
		at(57, 397, down),
		at(57, 458, left),
		snap(28, 458, right, 28, 457),
	}
}

func classicObstacles() []Rect {
	return []Rect{
		{X: 190, Y: 210, W: 120, H: 70},
		{X: 410, Y: 150, W: 80, H: 70},
		{X: 10, Y: 150, W: 80, H: 70},
		{X: 410, Y: 260, W: 80, H: 70},
		{X: 10, Y: 260, W: 80, H: 70},
		{X: 490, Y: 260, W: 10, H: 240},
		{X: 0, Y: 260, W: 10, H: 240},
		{X: 490, Y: 0, W: 10, H: 220},
		{X: 0, Y: 0, W: 10, H: 220},
		{X: 130, Y: 50, W: 70, H: 10},
		{X: 300, Y: 50, W: 70, H: 10},
		{X: 410, Y: 50, W: 40, H: 10},
		{X: 50, Y: 50, W: 40, H: 10},
		{X: 460, Y: 420, W: 30, H: 20},
		{X: 10, Y: 420, W: 30, H: 20},
		{X: 410, Y: 100, W: 40, H: 10},
		{X: 50, Y: 100, W: 40, H: 10},
		{X: 310, Y: 380, W: 50, H: 20},
		{X: 190, Y: 440, W: 120, H: 20},
		{X: 140, Y: 380, W: 50, H: 20},
		{X: 400, Y: 370, W: 20, H: 70},
		{X: 80, Y: 370, W: 20, H: 70},
		{X: 420, Y: 370, W: 30, H: 10},
		{X: 50, Y: 370, W: 40, H: 10},
		{X: 350, Y: 440, W: 10, H: 40},
		{X: 140, Y: 440, W: 10, H: 40},
		{X: 130, Y: 260, W: 20, H: 80},
		{X: 350, Y: 260, W: 20, H: 80},
		{X: 350, Y: 100, W: 20, H: 120},
		{X: 230, Y: 340, W: 40, H: 60},
		{X: 230, Y: 110, W: 40, H: 60},
		{X: 350, Y: 480, W: 140, H: 20},
		{X: 0, Y: 0, W: 500, H: 10},
		{X: 10, Y: 480, W: 140, H: 20},
		{X: 190, Y: 320, W: 120, H: 20},
		{X: 190, Y: 100, W: 120, H: 10},
		{X: 310, Y: 150, W: 40, H: 20},
		{X: 150, Y: 150, W: 40, H: 20},
		{X: 130, Y: 100, W: 20, H: 120},
		{X: 240, Y: 10, W: 20, H: 50},
	}
}

func classicCollectibles() []Point {
	return []Point{
		{X: 107, Y: 52}, {X: 107, Y: 77}, {X: 436, Y: 398}, {X: 467, Y: 398},
		{X: 436, Y: 427}, {X: 55, Y: 349}, {X: 85, Y: 349}, {X: 25, Y: 349},
		{X: 436, Y: 347}, {X: 466, Y: 347}, {X: 467, Y: 373}, {X: 436, Y: 459},
		{X: 57, Y: 457}, {X: 57, Y: 427}, {X: 57, Y: 394}, {X: 88, Y: 457},
		{X: 117, Y: 457}, {X: 27, Y: 457}, {X: 378, Y: 427}, {X: 378, Y: 375},
		{X: 378, Y: 401}, {X: 117, Y: 427}, {X: 117, Y: 375}, {X: 117, Y: 401},
		{X: 378, Y: 459}, {X: 408, Y: 459}, {X: 467, Y: 459}, {X: 207, Y: 388},
		{X: 287, Y: 388}, {X: 166, Y: 326}, {X: 137, Y: 358}, {X: 166, Y: 358},
		{X: 186, Y: 358}, {X: 207, Y: 358}, {X: 287, Y: 358}, {X: 287, Y: 475},
		{X: 207, Y: 475}, {X: 247, Y: 475}, {X: 328, Y: 475}, {X: 167, Y: 475},
		{X: 287, Y: 417}, {X: 207, Y: 417}, {X: 247, Y: 417}, {X: 315, Y: 417},
		{X: 142, Y: 417}, {X: 328, Y: 448}, {X: 167, Y: 448}, {X: 179, Y: 417},
		{X: 298, Y: 295}, {X: 229, Y: 295}, {X: 262, Y: 295}, {X: 469, Y: 52},
		{X: 83, Y: 130}, {X: 56, Y: 130}, {X: 28, Y: 130}, {X: 468, Y: 130},
		{X: 442, Y: 130}, {X: 415, Y: 130}, {X: 469, Y: 78}, {X: 442, Y: 78},
		{X: 415, Y: 78}, {X: 468, Y: 102}, {X: 25, Y: 406}, {X: 25, Y: 380},
		{X: 107, Y: 331}, {X: 107, Y: 306}, {X: 107, Y: 285}, {X: 107, Y: 216},
		{X: 107, Y: 262}, {X: 137, Y: 239}, {X: 107, Y: 239}, {X: 107, Y: 285},
		{X: 107, Y: 197}, {X: 107, Y: 177}, {X: 107, Y: 103}, {X: 107, Y: 130},
		{X: 107, Y: 156}, {X: 107, Y: 216}, {X: 107, Y: 262}, {X: 107, Y: 239},
		{X: 387, Y: 330}, {X: 387, Y: 305}, {X: 353, Y: 417}, {X: 387, Y: 284},
		{X: 387, Y: 215}, {X: 387, Y: 261}, {X: 387, Y: 238}, {X: 387, Y: 284},
		{X: 327, Y: 326}, {X: 307, Y: 358}, {X: 327, Y: 358}, {X: 357, Y: 358},
		{X: 406, Y: 347}, {X: 387, Y: 196}, {X: 387, Y: 176}, {X: 386, Y: 102},
		{X: 387, Y: 77}, {X: 387, Y: 130}, {X: 387, Y: 155}, {X: 327, Y: 295},
		{X: 166, Y: 295}, {X: 196, Y: 295}, {X: 18, Y: 239}, {X: 58, Y: 239},
		{X: 36, Y: 239}, {X: 79, Y: 239}, {X: 410, Y: 238}, {X: 387, Y: 215},
		{X: 387, Y: 261}, {X: 456, Y: 238}, {X: 434, Y: 238}, {X: 357, Y: 238},
		{X: 387, Y: 238}, {X: 475, Y: 238}, {X: 298, Y: 187}, {X: 229, Y: 187},
		{X: 262, Y: 187}, {X: 327, Y: 187}, {X: 166, Y: 187}, {X: 196, Y: 187},
		{X: 298, Y: 187}, {X: 327, Y: 215}, {X: 229, Y: 187}, {X: 262, Y: 187},
		{X: 327, Y: 187}, {X: 166, Y: 187}, {X: 327, Y: 238}, {X: 327, Y: 265},
		{X: 166, Y: 239}, {X: 166, Y: 265}, {X: 166, Y: 215}, {X: 196, Y: 187},
		{X: 289, Y: 157}, {X: 289, Y: 127}, {X: 206, Y: 157}, {X: 206, Y: 127},
		{X: 327, Y: 127}, {X: 327, Y: 102}, {X: 167, Y: 127}, {X: 167, Y: 102},
		{X: 217, Y: 28}, {X: 188, Y: 28}, {X: 161, Y: 28}, {X: 134, Y: 28},
		{X: 107, Y: 28}, {X: 78, Y: 28}, {X: 51, Y: 28}, {X: 469, Y: 28},
		{X: 442, Y: 28}, {X: 415, Y: 28}, {X: 388, Y: 28}, {X: 359, Y: 28},
		{X: 28, Y: 52}, {X: 387, Y: 52}, {X: 277, Y: 28}, {X: 217, Y: 52},
		{X: 277, Y: 52}, {X: 357, Y: 77}, {X: 328, Y: 77}, {X: 303, Y: 77},
		{X: 277, Y: 77}, {X: 247, Y: 77}, {X: 332, Y: 28}, {X: 305, Y: 28},
		{X: 193, Y: 77}, {X: 217, Y: 77}, {X: 167, Y: 77}, {X: 137, Y: 77},
		{X: 28, Y: 102}, {X: 28, Y: 77}, {X: 67, Y: 77},
	}
}
