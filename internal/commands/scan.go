package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/tildaslashalef/critic/internal/app"
	"github.com/tildaslashalef/critic/internal/loggy"
	"github.com/tildaslashalef/critic/internal/scanner"
	"github.com/tildaslashalef/critic/internal/utils"
)

// ScanCommand returns the CLI command for a discovery dry-run
func ScanCommand() *cli.Command {
	return &cli.Command{
		Name:  "scan",
		Usage: "List the files a review run would cover, without calling the model",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "Root directory to scan (default from config)",
			},
		},
		Action: func(c *cli.Context) error {
			a, err := app.FromContext(c)
			if err != nil {
				return err
			}

			cfg := a.Config
			if c.IsSet("root") {
				cfg.Scan.RootDir = c.String("root")
			}

			scannerService := scanner.NewService(cfg.Scan, loggy.GetGlobalLogger())
			targets, err := scannerService.Scan()
			if err != nil {
				return err
			}

			if len(targets) == 0 {
				utils.PrintWarning(fmt.Sprintf("No %s files found under %s", cfg.Scan.Extension, cfg.Scan.RootDir))
				return nil
			}

			t := utils.NewTable(fmt.Sprintf("%d file(s) under %s", len(targets), cfg.Scan.RootDir))
			t.AppendHeader(table.Row{"#", "Path", "Language"})
			for i, target := range targets {
				t.AppendRow(table.Row{i + 1, target.Path, target.Language})
			}
			t.Render()

			return nil
		},
	}
}
