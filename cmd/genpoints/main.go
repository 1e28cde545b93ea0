package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/aerben/convex-hull/point"
	"github.com/aerben/convex-hull/pointio"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "genpoints",
		Usage:     "Generates random unique points in a plane and outputs results to stdout",
		UsageText: "genpoints --number <value> --maxx <value> --minx <value> --maxy <value> --miny <value> [--json]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "number",
				Usage:    "The number of points to create",
				Value:    10,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(u int64) error {
					if u <= 0 {
						return fmt.Errorf("number must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "maxx",
				Usage:    "The maximum X value of the plane",
				OnlyOnce: true,
				Value:    100,
			},
			&cli.IntFlag{
				Name:     "minx",
				Usage:    "The minimum X value of the plane",
				OnlyOnce: true,
				Value:    0,
			},
			&cli.IntFlag{
				Name:     "maxy",
				Usage:    "The maximum Y value of the plane",
				OnlyOnce: true,
				Value:    100,
			},
			&cli.IntFlag{
				Name:     "miny",
				Usage:    "The minimum Y value of the plane",
				OnlyOnce: true,
				Value:    0,
			},
			&cli.BoolFlag{
				Name:     "json",
				Usage:    "Emit JSON instead of the flat \"x y\" line format",
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      app,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func randomIntInRange(min, max int64) int32 {
	return int32(min + rand.Int64N(max-min+1))
}

func pointComparator(a, b interface{}) int {
	return a.(point.Point).Compare(b.(point.Point))
}

func app(_ context.Context, cmd *cli.Command) error {

	minx := cmd.Int("minx")
	maxx := cmd.Int("maxx")
	miny := cmd.Int("miny")
	maxy := cmd.Int("maxy")
	n := cmd.Int("number")

	// sanity checks
	if minx >= maxx {
		return fmt.Errorf("maxx must be greater than minx")
	}
	if miny >= maxy {
		return fmt.Errorf("maxy must be greater than miny")
	}
	if capacity := (maxx - minx + 1) * (maxy - miny + 1); n > capacity {
		return fmt.Errorf("plane holds only %d distinct points, cannot generate %d", capacity, n)
	}

	// draw until n unique points were seen
	set := treeset.NewWith(pointComparator)
	for int64(set.Size()) < n {
		set.Add(point.New(
			randomIntInRange(minx, maxx),
			randomIntInRange(miny, maxy),
		))
	}

	output := make([]point.Point, 0, n)
	set.Each(func(_ int, value interface{}) {
		output = append(output, value.(point.Point))
	})

	if cmd.Bool("json") {
		b, err := json.Marshal(output)
		if err != nil {
			return err
		}
		fmt.Print(string(b))
		return nil
	}
	return pointio.Write(os.Stdout, output)
}
