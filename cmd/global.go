package cmd

import (
	"github.com/creativeprojects/folders/cfg"
	"github.com/creativeprojects/folders/lib"
	"github.com/creativeprojects/folders/store"
	"github.com/creativeprojects/folders/term"
)

type GlobalFlags struct {
	configFile string
	store      string
	quiet      bool
	verbose    bool
}

var (
	global GlobalFlags
	config *cfg.Config
)

func openStore() (store.Backend, error) {
	return openBackend(config.Store)
}

func openBackend(name string) (store.Backend, error) {
	var logger lib.Logger
	if global.verbose {
		logger = term.DebugLogger()
	}
	return store.Open(name, logger)
}
