package main

import "cs2-localizer/cmd"

func main() {
	cmd.Execute()
}
