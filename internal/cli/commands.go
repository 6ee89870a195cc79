package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"calendar-event-creator/internal/event"
	"calendar-event-creator/internal/model"
	"calendar-event-creator/pkg/oauth"
)

var ErrGoogleDisabled = errors.New("google sign-in is not configured (set GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET)")

// formFlags are the fields of the event form.
type formFlags struct {
	title       string
	description string
	date        string
	time        string
	timezone    string
}

func (f *formFlags) bindSchedule(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.date, "date", "", "Calendar date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&f.time, "time", event.DefaultTimeOfDay, "Time of day, HH:MM")
	cmd.Flags().StringVar(&f.timezone, "timezone", "", "IANA timezone, e.g. America/New_York")
	cmd.MarkFlagRequired("date")
}

func (f *formFlags) bindEvent(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Event title (required)")
	cmd.Flags().StringVar(&f.description, "description", "", "Event description")
	f.bindSchedule(cmd)
}

func (f formFlags) createInput() event.CreateInput {
	return event.CreateInput{
		Title:       f.title,
		Description: f.description,
		Date:        f.date,
		Time:        f.time,
		Timezone:    f.timezone,
	}
}

func newZonesCmd(deps Deps, root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "zones",
		Short: "List the selectable timezones with their current offsets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := root.outputFormat()
			if err != nil {
				return err
			}
			out, err := deps.Events.ListTimezones(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing timezones: %w", err)
			}
			return WriteZones(cmd.OutOrStdout(), out, format)
		},
	}
}

func newResolveCmd(deps Deps, root *rootFlags) *cobra.Command {
	form := &formFlags{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Show the UTC window a date, time and timezone resolve to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := root.outputFormat()
			if err != nil {
				return err
			}
			out, err := deps.Events.Preview(cmd.Context(), event.PreviewInput{
				Date:     form.date,
				Time:     form.time,
				Timezone: form.timezone,
			})
			if err != nil {
				return err
			}
			return WriteWindow(cmd.OutOrStdout(), out.Window, format)
		},
	}
	form.bindSchedule(cmd)
	return cmd
}

func newICSCmd(deps Deps) *cobra.Command {
	form := &formFlags{}
	var output string
	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Render the event as an iCalendar file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := deps.Events.ExportICS(cmd.Context(), form.createInput())
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), out.Content)
				return err
			}
			if err := os.WriteFile(output, []byte(out.Content), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", output)
			return nil
		},
	}
	form.bindEvent(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")
	return cmd
}

func newCreateCmd(deps Deps, root *rootFlags) *cobra.Command {
	form := &formFlags{}
	var token string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create the event in the primary Google Calendar",
		Long: fmt.Sprintf(`Create the event in the primary Google Calendar.
The access token comes from --token or the %s environment variable;
"eventctl auth" prints one.`, TokenEnv),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := root.outputFormat()
			if err != nil {
				return err
			}
			if token == "" {
				token = os.Getenv(TokenEnv)
			}
			sc := model.Scope{Provider: oauth.ProviderGoogle, AccessToken: strings.TrimSpace(token)}

			out, err := deps.Events.Create(cmd.Context(), sc, form.createInput())
			if err != nil {
				return err
			}
			return WriteCreated(cmd.OutOrStdout(), out.Event, format)
		},
	}
	form.bindEvent(cmd)
	cmd.Flags().StringVar(&token, "token", "", "Google OAuth access token")
	return cmd
}

func newAuthCmd(deps Deps, root *rootFlags) *cobra.Command {
	var code string
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Obtain a Google Calendar access token",
		Long: `Print the Google consent URL, then exchange the authorization code
pasted back (or given with --code) for an access token.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := root.outputFormat()
			if err != nil {
				return err
			}
			if deps.Google == nil {
				return ErrGoogleDisabled
			}

			if code == "" {
				errOut := cmd.ErrOrStderr()
				fmt.Fprintln(errOut, "Open this URL in a browser and sign in with your Google account:")
				fmt.Fprintln(errOut)
				fmt.Fprintln(errOut, deps.Google.AuthCodeURL(uuid.NewString()))
				fmt.Fprintln(errOut)
				fmt.Fprint(errOut, "Paste the authorization code here: ")

				scanner := bufio.NewScanner(cmd.InOrStdin())
				if !scanner.Scan() {
					if err := scanner.Err(); err != nil {
						return fmt.Errorf("reading authorization code: %w", err)
					}
					return errors.New("no authorization code given")
				}
				code = strings.TrimSpace(scanner.Text())
			}
			if code == "" {
				return errors.New("no authorization code given")
			}

			tok, err := deps.Google.Exchange(cmd.Context(), code)
			if err != nil {
				return fmt.Errorf("exchanging authorization code: %w", err)
			}
			return WriteToken(cmd.OutOrStdout(), tok, format)
		},
	}
	cmd.Flags().StringVar(&code, "code", "", "Authorization code, skips the prompt")
	return cmd
}
