// Command plottour draws the tour in solution.txt over the points in
// tsp300.txt and saves it as tsp_tour.png, all in the working directory.
package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/tourplot"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	res, err := tourplot.Run(tourplot.DefaultConfig(), logger)
	if err != nil {
		logger.Error("plot tour failed", "err", err)
		os.Exit(1)
	}

	if err = report(os.Stdout, res); err != nil {
		logger.Error("write confirmation", "err", err)
		os.Exit(1)
	}
}

// report prints the single confirmation line naming the output file.
func report(w io.Writer, res tourplot.Result) error {
	_, err := fmt.Fprintf(w, "Tour plot has been saved as '%s'.\n", res.Output)
	return err
}
