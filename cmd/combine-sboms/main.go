package main

import (
	"github.com/joshyorko/sbomtool/cmd"
)

func main() {
	defer cmd.ExitProtection()
	cmd.Execute(cmd.CombineCommand())
}
