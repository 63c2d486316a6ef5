// Command valvenet plans site activation schedules over a tunnel network.
//
// Usage:
//
//	valvenet solve FILE [--start AA] [--budget 30] [--agents 1|2] [--workers N]
//	                    [--timeout 10s] [--no-bound] [--no-seed]
//	                    [--activation-cost 1] [--metrics]
//	valvenet seed FILE [--start AA] [--budget 30]
//	valvenet distances FILE [--start AA]
//
// Global flags: --config FILE, --log-level LEVEL, --log-pretty.
//
// FILE is either the line format or a YAML sites document (.yaml/.yml).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "valvenet:", err)
		os.Exit(1)
	}
}
