// Package muncher implements a pellet maze game: steer through the maze,
// eat every pellet to clear the level, then advance to the next maze.
package muncher

// Level is a playable maze.
// Layout characters:
//
//	'#' = wall
//	'.' = pellet
//	'P' = player start (floor, no pellet)
//	' ' = empty floor
type Level struct {
	ID     string
	Name   string
	Layout []string
}

// Levels is the campaign, in play order.
var Levels = []Level{
	{
		ID:   "corridors",
		Name: "Corridors",
		Layout: []string{
			"#####################",
			"#...................#",
			"#.#####.#####.#####.#",
			"#.....#.#...#.#.....#",
			"#####.#.#.#.#.#.#####",
			"#.....#...#...#.....#",
			"#.###############.#.#",
			"#........P........#.#",
			"#####################",
		},
	},
	{
		ID:   "crossing",
		Name: "Crossing",
		Layout: []string{
			"#####################",
			"#.........#.........#",
			"#.#######.#.#######.#",
			"#.#.....#...#.....#.#",
			"#.#.###.#####.###.#.#",
			"#...#.....P.....#...#",
			"#.#.###.#####.###.#.#",
			"#.#.....#...#.....#.#",
			"#.#######.#.#######.#",
			"#.........#.........#",
			"#####################",
		},
	},
	{
		ID:   "vault",
		Name: "The Vault",
		Layout: []string{
			"#########################",
			"#.......................#",
			"#.#####.#######.#######.#",
			"#.#...#.#.....#.#.....#.#",
			"#.#.#.#.#.###.#.#.###.#.#",
			"#...#...#.#P#.#...#...#.#",
			"#.#####.#.#.#.#.###.###.#",
			"#.#.....#.#.#.#.#.....#.#",
			"#.#.#####.#.#.#.#.#####.#",
			"#.........#...#.........#",
			"#########################",
		},
	},
	{
		ID:   "spiral",
		Name: "Spiral",
		Layout: []string{
			"#####################",
			"#...................#",
			"#.#################.#",
			"#.#...............#.#",
			"#.#.#############.#.#",
			"#.#.#...........#.#.#",
			"#.#.#.#########.#.#.#",
			"#.#.#.#P........#.#.#",
			"#.#.#.###########.#.#",
			"#.#.#.............#.#",
			"#.#.###############.#",
			"#.#.................#",
			"#####################",
		},
	},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns a level by index, wrapping past the end.
func GetLevel(index int) *Level {
	if len(Levels) == 0 {
		return nil
	}
	return &Levels[index%len(Levels)]
}
