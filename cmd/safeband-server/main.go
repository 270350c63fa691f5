package main

import "github.com/oshokin/safeband/cmd/safeband-server/cmd"

func main() {
	cmd.Execute()
}
