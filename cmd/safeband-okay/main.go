package main

import "github.com/oshokin/safeband/cmd/safeband-okay/cmd"

func main() {
	cmd.Execute()
}
