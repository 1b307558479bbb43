package commands

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/tildaslashalef/critic/internal/app"
	"github.com/tildaslashalef/critic/internal/llm"
	"github.com/tildaslashalef/critic/internal/loggy"
	"github.com/tildaslashalef/critic/internal/report"
	"github.com/tildaslashalef/critic/internal/review"
	"github.com/tildaslashalef/critic/internal/scanner"
	"github.com/tildaslashalef/critic/internal/utils"
)

// ReviewCommand returns the CLI command for running a batch review
func ReviewCommand() *cli.Command {
	return &cli.Command{
		Name:  "review",
		Usage: "Review every source file under the root and write the aggregated report",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "Root directory to scan (default from config)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Report output path (default from config)",
			},
			&cli.StringFlag{
				Name:    "provider",
				Aliases: []string{"p"},
				Usage:   "Provider to use: claude or ollama (default from config)",
			},
			&cli.StringFlag{
				Name:    "model",
				Aliases: []string{"m"},
				Usage:   "Model identifier override",
			},
			&cli.BoolFlag{
				Name:  "print",
				Usage: "Render the finished report to the terminal",
			},
		},
		Action: func(c *cli.Context) error {
			a, err := app.FromContext(c)
			if err != nil {
				return err
			}

			cfg := a.Config
			logger := loggy.GetGlobalLogger()

			// Apply flag overrides to the loaded configuration
			if c.IsSet("root") {
				cfg.Scan.RootDir = c.String("root")
			}
			if c.IsSet("output") {
				cfg.Report.OutputPath = c.String("output")
			}

			provider := string(a.Provider)
			if c.IsSet("provider") {
				provider = c.String("provider")
			}
			if c.IsSet("model") {
				switch provider {
				case "claude":
					cfg.Claude.Model = c.String("model")
				case "ollama":
					cfg.Ollama.Model = c.String("model")
				}
			}

			client, err := a.Factory.GetClient(llm.ClientType(provider))
			if err != nil {
				return err
			}

			// Services are rebuilt from the (possibly overridden) config
			scannerService := scanner.NewService(cfg.Scan, logger)
			reviewService := review.NewService(scannerService, client, cfg, provider, logger)
			reportService := report.NewService(cfg.Report, logger)

			utils.PrintHeading("Running code review")
			utils.PrintInfo("Root: " + color.YellowString("%s", cfg.Scan.RootDir))
			utils.PrintInfo("Provider: " + color.YellowString("%s (%s)", provider, cfg.ModelFor(provider)))

			run, err := reviewService.Run(c.Context)
			if err != nil {
				return err
			}

			content, err := reportService.Write(run)
			if err != nil {
				return err
			}

			report.PrintStats(run)

			stats := run.Stats()
			if stats.Failed > 0 {
				utils.PrintWarning(fmt.Sprintf("%d file(s) failed; details are recorded in the report", stats.Failed))
			}
			utils.PrintSuccess("Report written to " + color.YellowString("%s", cfg.Report.OutputPath))

			if c.Bool("print") {
				rendered, err := glamour.Render(content, "dark")
				if err != nil {
					// Rendering is cosmetic; fall back to the raw markdown
					loggy.Warn("failed to render report", "error", err)
					fmt.Println(content)
					return nil
				}
				fmt.Println(rendered)
			}

			return nil
		},
	}
}
