package main

import "github.com/Bitlatte/teamsite/cmd"

func main() {
	cmd.Execute()
}
