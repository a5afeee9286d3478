// onair - radio broadcast log analyzer
//
// onair reconstructs the start time of every broadcast in a station log and
// answers a fixed set of schedule queries over it.
package main

import (
	"os"

	"github.com/ccollicutt/onair/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
