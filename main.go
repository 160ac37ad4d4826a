// main.go
//
// Minimal entry point that delegates CLI handling to the Cobra root command in cmd/root.go

package main

import (
	"github.com/j-r-j/Gm-sim-sub016/cmd"
)

func main() {
	cmd.Execute()
}
