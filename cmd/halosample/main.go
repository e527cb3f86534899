// halosample compares strategies for drawing random radii from an NFW
// dark-matter halo profile.
package main

import (
	"os"

	"github.com/cosmostat/halosample/cmd/halosample/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
