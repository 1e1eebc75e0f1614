package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/creativeprojects/folders/folder"
	"github.com/creativeprojects/folders/render"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <uri>",
	Short: "Display all the fields of a folder",
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "display the folder as JSON")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return errors.New("missing folder URI")
	}
	backend, err := openStore()
	if err != nil {
		return fmt.Errorf("cannot open store: %w", err)
	}
	defer backend.Close()

	f, err := backend.Get(folder.ParseURI(args[0]))
	if err != nil {
		return fmt.Errorf("cannot load folder %q: %w", args[0], err)
	}
	if showJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(f)
	}
	return pterm.DefaultTable.WithData(folderDetails(f, config.DefaultBackgroundColor)).Render()
}

func folderDetails(f *folder.Folder, defaultColor int32) pterm.TableData {
	swatch, _ := render.BlockColor(f, defaultColor)
	icon, _ := render.Icon(f)
	parent := ""
	if f.Parent != nil {
		parent = f.Parent.URI.String()
	}
	lastMessage := ""
	if f.LastMessageTimestamp > 0 {
		lastMessage = time.UnixMilli(f.LastMessageTimestamp).Format(time.RFC3339)
	}
	return pterm.TableData{
		{"ID", strconv.FormatInt(int64(f.ID), 10)},
		{"Persistent ID", f.PersistentID},
		{"URI", f.URI.String()},
		{"Name", f.Name},
		{"Path", f.HierarchicalDesc},
		{"Parent", parent},
		{"Initialized", strconv.FormatBool(f.IsInitialized())},
		{"Capabilities", f.Capabilities.String()},
		{"Type", f.Type.String()},
		{"Has children", strconv.FormatBool(f.HasChildren)},
		{"Sync window", strconv.FormatInt(int64(f.SyncWindow), 10) + " days"},
		{"Conversations", f.ConversationListURI.String()},
		{"Children", f.ChildFoldersListURI.String()},
		{"Refresh", f.RefreshURI.String()},
		{"Load more", f.LoadMoreURI.String()},
		{"Unseen", strconv.FormatInt(int64(f.UnseenCount), 10)},
		{"Unread", strconv.FormatInt(int64(f.UnreadCount), 10)},
		{"Total", strconv.FormatInt(int64(f.TotalCount), 10)},
		{"Sync status", f.SyncStatus.String()},
		{"Last sync", f.LastSyncResult.String()},
		{"Colour", swatch.Sprint() + " " + f.BgColor},
		{"Icon", strconv.FormatInt(int64(icon), 10)},
		{"Last message", lastMessage},
	}
}
