package main

import "github.com/oshokin/safeband/cmd/safeband-status/cmd"

func main() {
	cmd.Execute()
}
