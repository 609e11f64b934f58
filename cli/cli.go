package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"pfeifer.dev/overlayd/params"
	"pfeifer.dev/overlayd/sim"
)

func Handle() {
	params.LoadEnv()

	shouldExit := true
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Send commands to and watch an active overlayd instance",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					interactive()
					return nil
				},
			},
			{
				Name:  "set",
				Usage: "Change a single setting of an active overlayd instance with simple prompts",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return quickSet()
				},
			},
			{
				Name:    "simulate",
				Aliases: []string{"sim"},
				Usage:   "Run scripted lead scenarios through the overlay engine and plot the results",
				Flags: append(engineFlags(),
					&cli.StringSliceFlag{
						Category: "Scenarios",
						Name:     "scenario",
						Aliases:  []string{"s"},
						Usage:    fmt.Sprintf("Scenario to run, may be repeated. One of %v", sim.ScenarioNames()),
						Value:    sim.ScenarioNames(),
					},
					&cli.StringFlag{
						Category: "Inputs and Outputs",
						Name:     "output-directory",
						Aliases:  []string{"o"},
						Usage:    "The directory plots and reports are written to",
						Value:    fmt.Sprintf("%s/sim", params.BasePath),
					},
					&cli.BoolFlag{
						Category: "Inputs and Outputs",
						Name:     "html",
						Usage:    "Also write an interactive HTML report of every scenario",
						Value:    false,
					},
					&cli.StringFlag{
						Category: "Inputs and Outputs",
						Name:     "db",
						Usage:    "A sqlite file every trace is appended to under a new run id",
					},
				),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return simulate(simulateSettings{
						Engine:          engineSettings(cmd),
						Scenarios:       cmd.StringSlice("scenario"),
						OutputDirectory: cmd.String("output-directory"),
						HTML:            cmd.Bool("html"),
						Database:        cmd.String("db"),
					})
				},
			},
			{
				Name:  "snapshot",
				Usage: "Render one scenario frame to an image",
				Flags: append(engineFlags(),
					&cli.StringFlag{
						Category: "Scenarios",
						Name:     "scenario",
						Aliases:  []string{"s"},
						Usage:    fmt.Sprintf("Scenario to render. One of %v", sim.ScenarioNames()),
						Value:    "approach",
					},
					&cli.IntFlag{
						Category: "Scenarios",
						Name:     "frame",
						Aliases:  []string{"f"},
						Usage:    "Frame to render, negative counts back from the last frame",
						Value:    -1,
					},
					&cli.StringFlag{
						Category: "Inputs and Outputs",
						Name:     "output",
						Aliases:  []string{"o"},
						Usage:    "The image file to write",
						Value:    fmt.Sprintf("%s/snapshot.png", params.BasePath),
					},
				),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return snapshot(snapshotSettings{
						Engine:   engineSettings(cmd),
						Scenario: cmd.String("scenario"),
						Frame:    int(cmd.Int("frame")),
						Output:   cmd.String("output"),
					})
				},
			},
		},
		Name:  "Overlayd",
		Usage: "Start an instance of overlayd",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			shouldExit = false
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}

	if shouldExit {
		os.Exit(0)
	}
}
