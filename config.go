package tourplot

import "github.com/katalvlaran/tourplot/render"

// Fixed file names used by the command, relative to the working directory.
const (
	DefaultPointsFile = "tsp300.txt"
	DefaultTourFile   = "solution.txt"
	DefaultOutputFile = "tsp_tour.png"
)

// Config names the files Run works on and how the plot is drawn.
type Config struct {
	PointsFile string
	TourFile   string
	OutputFile string

	Render render.Options
}

// DefaultConfig returns the fixed file names with render.DefaultOptions.
func DefaultConfig() Config {
	return Config{
		PointsFile: DefaultPointsFile,
		TourFile:   DefaultTourFile,
		OutputFile: DefaultOutputFile,
		Render:     render.DefaultOptions(),
	}
}
