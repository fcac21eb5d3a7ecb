package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pnch-cli/pnch/internal/punch"
)

var inTime string

var inCmd = &cobra.Command{
	Use:   "in [tag/description]",
	Short: "Punch in: start a new entry",
	Long: `Punch in. This starts a new entry and records the time the command was
called. A tag and a description can be added while punching in, or later
when punching out. To add both at once, use the "my-tag/my description"
format: everything before the first forward slash is the tag, everything
after it is the description.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIn,
}

func init() {
	inCmd.Flags().StringVar(&inTime, "time", "", "Manual in time as hh:mm (defaults to now)")
}

func runIn(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	t, err := timeArg(inTime)
	if err != nil {
		return err
	}
	tg, description := entryArgs(s, args)

	if err := s.punches.PunchIn(punch.New(s.punches.NextID(), t, tg, description)); err != nil {
		return err
	}
	if err := s.tags.Save(); err != nil {
		return err
	}
	if err := s.punches.Save(); err != nil {
		return err
	}

	fmt.Println("You are now punched in.")
	return nil
}
