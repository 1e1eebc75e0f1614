package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/creativeprojects/folders/folder"
	"github.com/creativeprojects/folders/rows"
	"github.com/creativeprojects/folders/store"
	"github.com/creativeprojects/folders/term"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var importDryRun bool

var importCmd = &cobra.Command{
	Use:   "import <fixture.yaml>",
	Short: "Decode folder rows from a YAML fixture and save them in the store",
	RunE:  runImport,
}

func init() {
	importCmd.Flags().BoolVarP(&importDryRun, "dry-run", "n", false, "decode the rows and display the folders without saving them")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return errors.New("missing fixture file name")
	}
	list, err := rows.LoadFixtureFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot load fixture: %w", err)
	}

	folders, err := decodeRows(list, newProgresser(len(list)))
	if err != nil {
		return err
	}
	err = checkAccount(folders, config.AccountURI)
	if err != nil {
		return err
	}
	err = folder.LinkParents(folders)
	if err != nil {
		return fmt.Errorf("cannot build folder hierarchy: %w", err)
	}

	storeName := config.Store
	if importDryRun {
		storeName = store.InMemory
	}
	backend, err := openBackend(storeName)
	if err != nil {
		return fmt.Errorf("cannot open store: %w", err)
	}
	defer backend.Close()

	err = backend.Put(folders...)
	if err != nil {
		return fmt.Errorf("cannot save folders: %w", err)
	}
	if importDryRun {
		// display what went through the codec
		saved, err := backend.List()
		if err != nil {
			return err
		}
		return pterm.DefaultTable.WithHasHeader().WithData(folderTable(saved, config.DefaultBackgroundColor)).Render()
	}
	term.Infof("%d folders imported into %s", len(folders), storeName)
	return nil
}

func decodeRows(list []folder.Row, pbar Progresser) ([]*folder.Folder, error) {
	if pbar != nil {
		defer pbar.Stop()
	}
	folders := make([]*folder.Folder, 0, len(list))
	for index, row := range list {
		f, err := folder.FromRow(row)
		if pbar != nil {
			pbar.Increment()
		}
		if err != nil {
			return nil, fmt.Errorf("folder entry %d: %w", index, err)
		}
		if !f.IsInitialized() {
			term.Warnf("%s (%s) has no conversation list", f, f.Name)
		}
		folders = append(folders, f)
	}
	return folders, nil
}

// checkAccount verifies all the folders belong to the account
func checkAccount(folders []*folder.Folder, accountURI string) error {
	if accountURI == "" {
		return nil
	}
	for _, f := range folders {
		if !strings.HasPrefix(f.URI.String(), accountURI) {
			return fmt.Errorf("%s with URI %q does not belong to account %q", f, f.URI.String(), accountURI)
		}
	}
	return nil
}
