package main

import (
	"github.com/haytac/emoji-filter/internal/cli"
	"github.com/haytac/emoji-filter/internal/logging"
)

func main() {
	// Basic stderr logger until PersistentPreRunE applies the loaded config.
	logging.Setup(logging.Config{Level: "warn", Console: true, TimeFormat: "15:04:05"})

	cli.Execute()
}
