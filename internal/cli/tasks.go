package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"evalrunner/internal/registry"
)

type taskListing struct {
	TaskName    string   `json:"task_name"`
	Description string   `json:"description"`
	DatasetPath string   `json:"dataset_path"`
	ScoringMode string   `json:"scoring_mode"`
	Metrics     []string `json:"metrics"`
	Primary     string   `json:"primary_metric"`
}

func runTasks(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		asJSON := flags.Bool("json", false, "Print tasks as JSON")
		positional, code, ok := parseArgs(cmd, flags, args, stdout, stderr)
		if !ok {
			return code
		}
		if !requireArgs(cmd, positional, 0, stderr) {
			return ExitUsage
		}

		_, settings, ok := prepare(stderr)
		if !ok {
			return ExitError
		}
		listings := listTasks(registry.New(settings.DatasetRoot))

		if *asJSON {
			encoder := json.NewEncoder(stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(listings); err != nil {
				fmt.Fprintf(stderr, "Failed to encode tasks: %v\n", err)
				return ExitError
			}
			return ExitOK
		}
		if err := renderTasks(stdout, listings); err != nil {
			fmt.Fprintf(stderr, "Failed to render tasks: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

func listTasks(reg *registry.Registry) []taskListing {
	defs := reg.List()
	listings := make([]taskListing, 0, len(defs))
	for _, def := range defs {
		metrics, _ := reg.Metrics(def.TaskName)
		listings = append(listings, taskListing{
			TaskName:    def.TaskName,
			Description: def.Description,
			DatasetPath: def.DatasetPath,
			ScoringMode: string(metrics.ScoringMode),
			Metrics:     metrics.MetricNames(),
			Primary:     metrics.Primary(),
		})
	}
	return listings
}

func renderTasks(w io.Writer, listings []taskListing) error {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
	}
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader([]string{"Task", "Scoring", "Metrics", "Primary", "Dataset"}),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{Left: tw.On, Top: tw.Off, Right: tw.On, Bottom: tw.Off},
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
	for _, listing := range listings {
		row := []string{
			listing.TaskName,
			listing.ScoringMode,
			strings.Join(listing.Metrics, ", "),
			listing.Primary,
			listing.DatasetPath,
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("append %s: %w", listing.TaskName, err)
		}
	}
	return table.Render()
}
