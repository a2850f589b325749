// Command eventoffset prints the save-file byte and bit offset of a game
// event flag.
package main

import (
	"os"

	"github.com/roach88/baktools/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewEventOffsetCommand(), os.Args[1:]))
}
