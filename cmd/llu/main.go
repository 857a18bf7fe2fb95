package main

import "github.com/tidepool-org/librelinkup/cmd/llu/command"

func main() {
	command.Execute()
}
