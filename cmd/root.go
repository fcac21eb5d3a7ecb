package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pnch-cli/pnch/internal/clock"
	"github.com/pnch-cli/pnch/internal/config"
	"github.com/pnch-cli/pnch/internal/punch"
	"github.com/pnch-cli/pnch/internal/storage"
	"github.com/pnch-cli/pnch/internal/tag"
)

var rootCmd = &cobra.Command{
	Use:   "pnch",
	Short: "pnch – track your time directly from the CLI",
	Long: `pnch tracks your working time as punched intervals. Punch in to start
an entry, punch out to close it, tag and describe what you did, and
later list or export your timesheet. All data is stored in binary
database files in ~/.pnch/.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(inCmd)
	rootCmd.AddCommand(outCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(configCmd)
}

// session holds the three stores of one load-mutate-save run.
type session struct {
	tags    *tag.Table
	punches *punch.Store
	config  *config.Config
}

// loadSession loads the stores in dependency order: tags first, punches
// resolve their tag references through them, config on its own.
func loadSession() (*session, error) {
	dir, err := storage.Open()
	if err != nil {
		return nil, err
	}
	tags, err := tag.Load(dir)
	if err != nil {
		return nil, err
	}
	punches, err := punch.Load(dir, tags)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	return &session{tags: tags, punches: punches, config: cfg}, nil
}

// entryArgs resolves the optional "tag/description" argument, interning
// the tag when one is given.
func entryArgs(s *session, args []string) (*tag.Tag, string) {
	if len(args) == 0 {
		return nil, ""
	}
	entry := punch.ParseEntry(args[0])
	if entry.Tag == "" {
		return nil, entry.Description
	}
	t := s.tags.GetOrInsert(entry.Tag)
	return &t, entry.Description
}

// timeArg parses a --time flag value, defaulting to the current time.
func timeArg(value string) (clock.Time, error) {
	if value == "" {
		return clock.Now(), nil
	}
	return clock.ParseTime(value)
}
