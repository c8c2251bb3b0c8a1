package main

import (
	"flag"
	"os"

	"NotesBro/internal/cli/commands"
	"NotesBro/internal/config"
)

func main() {
	cfg := config.NewConfig()
	os.Exit(commands.Dispatch(cfg, flag.Args()))
}
