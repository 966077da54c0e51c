package main

import "intl-sheets/cmd"

func main() {
	cmd.Execute()
}
