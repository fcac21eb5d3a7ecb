package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pnch-cli/pnch/internal/punch"
)

var (
	editID  uint32
	editIn  string
	editOut string
)

var editCmd = &cobra.Command{
	Use:   "edit [tag/description]",
	Short: "Edit a punched entry",
	Long: `Edit the tag, description or times of an entry. Without --id the last
entry is edited. This overwrites fields directly and skips the usual
open/close checks, so it can also repair entries after the fact.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().Uint32Var(&editID, "id", 0, "Id of the entry to edit (see pnch ls)")
	editCmd.Flags().StringVar(&editIn, "in", "", "New in time as hh:mm")
	editCmd.Flags().StringVar(&editOut, "out", "", "New out time as hh:mm")
}

func runEdit(cmd *cobra.Command, args []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	target := s.punches.GetLast()
	if cmd.Flags().Changed("id") {
		target = s.punches.Get(editID)
	}
	if target == nil {
		return punch.ErrNoPunch
	}

	if editIn != "" {
		t, err := timeArg(editIn)
		if err != nil {
			return err
		}
		target.In = t
	}
	if editOut != "" {
		t, err := timeArg(editOut)
		if err != nil {
			return err
		}
		target.Out = &t
	}
	if len(args) == 1 {
		tg, description := entryArgs(s, args)
		target.Tag = tg
		target.Description = description
	}

	if err := s.tags.Save(); err != nil {
		return err
	}
	if err := s.punches.Save(); err != nil {
		return err
	}

	fmt.Println("The punch was edited.")
	return nil
}
