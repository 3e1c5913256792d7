// Command optionmc prices European options by Monte Carlo simulation of
// geometric Brownian motion and compares the result with Black-Scholes.
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
)

func main() {
	flag.Set("alsologtostderr", "true")
	defer glog.Flush()

	if err := Execute(); err != nil {
		glog.Flush()
		os.Exit(1)
	}
}
