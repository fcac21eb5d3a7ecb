package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pnch-cli/pnch/internal/punch"
)

var outTime string

var outCmd = &cobra.Command{
	Use:   "out [tag/description]",
	Short: "Punch out: close the open entry",
	Long: `Punch out. This closes the entry previously opened with "pnch in". A tag
and a description can still be added here if they were not specified
while punching in, using the "my-tag/my description" format. Every
closed entry must carry a description.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOut,
}

func init() {
	outCmd.Flags().StringVar(&outTime, "time", "", "Manual out time as hh:mm (defaults to now)")
}

func runOut(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	last := s.punches.GetLast()
	if last == nil {
		return punch.ErrNoPunch
	}

	t, err := timeArg(outTime)
	if err != nil {
		return err
	}
	tg, description := entryArgs(s, args)

	if err := last.Close(t, tg, description); err != nil {
		return err
	}
	if err := s.tags.Save(); err != nil {
		return err
	}
	if err := s.punches.Save(); err != nil {
		return err
	}

	fmt.Println("You are now punched out.")
	return nil
}
