package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pnch-cli/pnch/internal/clock"
	"github.com/pnch-cli/pnch/internal/punch"
)

var (
	lsSince  string
	lsLast   string
	lsFrom   string
	lsTo     string
	lsTag    string
	lsFormat string
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List punched entries",
	Long: `List punched entries. The date filters (--since, --from/--to and --last)
act as a union: entries matching any of them are listed. The --tag
filter then narrows that list to one tag. By default only entries from
the last 14 days are listed; change the window with
"pnch config ls-default-period". Output is pretty printed or csv.`,
	Args: cobra.NoArgs,
	RunE: runLs,
}

func init() {
	lsCmd.Flags().StringVarP(&lsSince, "since", "s", "", "Entries since this date (yyyy-mm-dd)")
	lsCmd.Flags().StringVarP(&lsLast, "last", "l", "", "Entries from the last period, e.g. \"2 weeks\"")
	lsCmd.Flags().StringVarP(&lsFrom, "from", "f", "", "Range start (yyyy-mm-dd), needs --to")
	lsCmd.Flags().StringVarP(&lsTo, "to", "t", "", "Range end (yyyy-mm-dd), needs --from")
	lsCmd.Flags().StringVar(&lsTag, "tag", "", "Only entries with this tag")
	lsCmd.Flags().StringVar(&lsFormat, "format", "pretty", "Output format: pretty or csv")
}

func runLs(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	format, err := punch.ParseFormat(lsFormat)
	if err != nil {
		return err
	}

	filter := punch.Filter{Tag: lsTag}
	if lsSince != "" {
		d, err := clock.ParseDate(lsSince)
		if err != nil {
			return err
		}
		filter.Since = &d
	}
	if lsFrom != "" {
		d, err := clock.ParseDate(lsFrom)
		if err != nil {
			return err
		}
		filter.From = &d
	}
	if lsTo != "" {
		d, err := clock.ParseDate(lsTo)
		if err != nil {
			return err
		}
		filter.To = &d
	}
	if lsLast != "" {
		p, err := clock.ParsePeriod(lsLast)
		if err != nil {
			return err
		}
		filter.Last = &p
	}

	list, err := s.punches.Filtered(filter, s.config.LsDefaultPeriod)
	if err != nil {
		return err
	}

	switch format {
	case punch.CSV:
		fmt.Print(list.CSV())
	default:
		fmt.Print(list.Pretty(s.config.PrintColor))
	}
	return nil
}
