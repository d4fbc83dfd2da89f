package commands

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jthorne/matter/internal/doctor"
	"github.com/jthorne/matter/internal/errors"
)

var doctorJSON bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration and environment health",
	Long: `Run diagnostic checks: configuration validity, the date format,
the taxonomy vocabulary, and the editor fallback chain.

Exits non-zero when any check reports an error.`,
	Example: `  matter doctor
  matter doctor --json

  See Also:
    matter config  - Show the effective configuration`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	report := doctor.Run(cfg)
	w := cmd.OutOrStdout()

	if doctorJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
	} else {
		pass := color.New(color.FgGreen)
		warn := color.New(color.FgYellow)
		fail := color.New(color.FgRed, color.Bold)

		for _, result := range report.Results {
			marker := pass.Sprint("✓")
			switch result.Status {
			case doctor.SeverityWarning:
				marker = warn.Sprint("!")
			case doctor.SeverityError:
				marker = fail.Sprint("✗")
			case doctor.SeverityInfo:
				marker = "·"
			}
			fmt.Fprintf(w, "%s %-12s %s\n", marker, result.Name, result.Message)
			if result.Hint != "" {
				fmt.Fprintf(w, "  %s\n", result.Hint)
			}
		}
	}

	if report.Errors > 0 {
		return errors.NewExitError(errors.ErrInvalidConfig, errors.ExitUser)
	}
	return nil
}
