package commands

import (
	"fmt"
	"os"

	"songart/pkg/logger"
)

const helpText = `usage: songart <command>

commands:
  run <config.yml>  start the server
  version           print the version
  help              show this message
`

func ExitOnError(err error) {
	logger.Error("songart error", "err", err.Error())
	os.Exit(1)
}

func HandleHelp(_ []string) {
	fmt.Print(helpText) //nolint
}
