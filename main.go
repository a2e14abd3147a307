package main

import "uacast/cmd"

func main() {
	cmd.Execute()
}
