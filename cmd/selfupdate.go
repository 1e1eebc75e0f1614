package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/creativeprojects/folders/store"
	"github.com/creativeprojects/folders/term"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const releaseTimeout = 30 * time.Second

var (
	updateCheckOnly bool
	updateForce     bool
)

var selfUpdateCmd = &cobra.Command{
	Use:   "selfupdate",
	Short: "Download newest release from Github and replace the folders binary",
	Long: "\nDownload newest release from Github and replace the folders binary.\n" +
		"The update is refused while another folders process holds the store open.",
	RunE: runSelfUpdate,
}

var (
	appVersion = ""
	appCommit  = ""
	appDate    = ""
	appBuiltBy = ""
)

func init() {
	flag := selfUpdateCmd.Flags()
	flag.BoolVar(&updateCheckOnly, "check", false, "only report whether a newer release is available")
	flag.BoolVar(&updateForce, "force", false, "update even when the folder store is in use")
	rootCmd.AddCommand(selfUpdateCmd)
}

func setApp(version, commit, date, builtBy string) {
	appVersion = version
	appCommit = commit
	appDate = date
	appBuiltBy = builtBy
}

// release is the part of *selfupdate.Release deciding an update
type release interface {
	LessOrEqual(other string) bool
	Version() string
}

type updateAction int

const (
	updateNone updateAction = iota
	updateReport
	updateReplace
)

var errStoreInUse = errors.New("folder store is in use")

type updatePlan struct {
	current   string
	checkOnly bool
	force     bool
	storeBusy bool
}

// decide what to do with the latest release found
func (p updatePlan) decide(latest release) (updateAction, error) {
	if latest.LessOrEqual(p.current) {
		return updateNone, nil
	}
	if p.checkOnly {
		return updateReport, nil
	}
	if p.storeBusy && !p.force {
		return updateNone, fmt.Errorf("%w: close the other folders process or use --force to install version %s", errStoreInUse, latest.Version())
	}
	return updateReplace, nil
}

func runSelfUpdate(cmd *cobra.Command, args []string) error {
	if global.verbose {
		selfupdate.SetLogger(term.DebugLogger())
	}
	// only filters return an error
	updater, _ := selfupdate.NewUpdater(selfupdate.Config{
		Validator: &selfupdate.ChecksumValidator{UniqueFilename: "checksums.txt"},
	})

	latest, found, err := detectLatest(updater)
	if err != nil {
		return fmt.Errorf("unable to detect latest version: %w", err)
	}
	if !found {
		return fmt.Errorf("latest version for %s/%s could not be found from github repository", runtime.GOOS, runtime.GOARCH)
	}

	busy, err := store.InUse(config.Store)
	if err != nil {
		term.Warnf("cannot check folder store %q: %s", config.Store, err)
	}
	plan := updatePlan{
		current:   appVersion,
		checkOnly: updateCheckOnly,
		force:     updateForce,
		storeBusy: busy,
	}
	action, err := plan.decide(latest)
	if err != nil {
		return err
	}
	switch action {
	case updateNone:
		term.Infof("Current version (%s) is the latest", appVersion)
		return nil
	case updateReport:
		term.Infof("Version %s is available (current version is %s)", latest.Version(), appVersion)
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return errors.New("could not locate executable path")
	}
	if err := updater.UpdateTo(context.Background(), latest, exe); err != nil {
		return fmt.Errorf("unable to update binary: %w", err)
	}
	term.Infof("Successfully updated to version %s", latest.Version())
	return nil
}

func detectLatest(updater *selfupdate.Updater) (*selfupdate.Release, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	return updater.DetectLatest(ctx, selfupdate.NewRepositorySlug("creativeprojects", "folders"))
}
