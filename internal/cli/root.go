package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"calendar-event-creator/internal/event"
	"calendar-event-creator/pkg/oauth"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// TokenEnv is read by create when --token is not given.
const TokenEnv = "CALENDAR_ACCESS_TOKEN"

// Deps are the collaborators the commands run against.
type Deps struct {
	Events event.UseCase
	// Google is nil when no Google credentials are configured.
	Google oauth.Provider
}

type rootFlags struct {
	format string
}

func (f rootFlags) outputFormat() (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(f.format))
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", f.format)
	}
	return format, nil
}

// NewRootCmd creates the root command
func NewRootCmd(deps Deps) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "eventctl",
		Short: "Resolve and create one-hour calendar events",
		Long: `A CLI tool to turn a date, a time of day and an IANA timezone into a
one-hour event, preview it in UTC, export it as .ics or write it to Google Calendar.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.format, "format", "text", "Output format: text or json")

	cmd.AddCommand(
		newZonesCmd(deps, flags),
		newResolveCmd(deps, flags),
		newICSCmd(deps),
		newCreateCmd(deps, flags),
		newAuthCmd(deps, flags),
	)

	return cmd
}

// Execute runs the CLI
func Execute(deps Deps) {
	if err := NewRootCmd(deps).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
