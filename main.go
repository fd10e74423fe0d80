package main

import "todone/cmd"

func main() {
	cmd.Execute()
}
