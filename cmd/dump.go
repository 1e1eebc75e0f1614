package cmd

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/creativeprojects/folders/folder"
	"github.com/creativeprojects/folders/term"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <uri>",
	Short: "Display the parcel of a folder as a hex dump",
	RunE:  runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return errors.New("missing folder URI")
	}
	backend, err := openStore()
	if err != nil {
		return fmt.Errorf("cannot open store: %w", err)
	}
	defer backend.Close()

	raw, err := backend.Raw(folder.ParseURI(args[0]))
	if err != nil {
		return fmt.Errorf("cannot load folder %q: %w", args[0], err)
	}
	term.Debugf("parcel of %d bytes", len(raw))
	dumper := hex.Dumper(os.Stdout)
	defer dumper.Close()
	_, err = dumper.Write(raw)
	return err
}
