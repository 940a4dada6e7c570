package main

import "github.com/rdavid/cbase/cmd/cbase/cmd"

func main() {
	cmd.Execute()
}
