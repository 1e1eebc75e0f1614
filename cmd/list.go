package cmd

import (
	"fmt"
	"strconv"

	"github.com/creativeprojects/folders/folder"
	"github.com/creativeprojects/folders/render"
	"github.com/creativeprojects/folders/term"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Display list of folders",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	backend, err := openStore()
	if err != nil {
		return fmt.Errorf("cannot open store: %w", err)
	}
	defer backend.Close()

	folders, err := backend.List()
	if err != nil {
		return fmt.Errorf("cannot list folders: %w", err)
	}
	if len(folders) == 0 {
		term.Warn("No folder found in the store")
		return nil
	}
	err = folder.Sort(folders)
	if err != nil {
		// keep the store order
		term.Warn(err)
	}
	table := pterm.DefaultTable.WithHasHeader().WithData(folderTable(folders, config.DefaultBackgroundColor))
	return table.Render()
}

func folderTable(folders []*folder.Folder, defaultColor int32) pterm.TableData {
	data := pterm.TableData{
		{"", "Folder", "Path", "Unread", "Total", "Type", "Sync"},
	}
	for _, f := range folders {
		swatch, err := render.BlockColor(f, defaultColor)
		if err != nil {
			term.Warnf("%s: %s", f, err)
		}
		data = append(data, []string{
			swatch.Sprint(),
			f.Name,
			f.HierarchicalDesc,
			strconv.FormatInt(int64(f.UnreadCount), 10),
			strconv.FormatInt(int64(f.TotalCount), 10),
			f.Type.String(),
			syncState(f),
		})
	}
	return data
}

func syncState(f *folder.Folder) string {
	switch {
	case f.IsSyncInProgress():
		return "in progress"
	case f.WasSyncSuccessful():
		return "ok"
	default:
		return f.LastSyncResult.String()
	}
}
