// Command tickconv converts game clock ticks into days, hours, minutes and
// seconds.
package main

import (
	"os"

	"github.com/roach88/baktools/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewTickConvCommand(), os.Args[1:]))
}
