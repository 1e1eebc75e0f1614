package main

import "github.com/creativeprojects/folders/cmd"

// set by goreleaser
var (
	version = "0.0.0-dev"
	commit  = ""
	date    = ""
	builtBy = ""
)

func main() {
	cmd.Execute(version, commit, date, builtBy)
}
