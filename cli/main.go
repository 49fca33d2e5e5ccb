package main

import "github.com/Optum/guardduty-enabler/cli/cmd"

func main() {
	cmd.Execute()
}
