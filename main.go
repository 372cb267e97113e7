package main

import "github.com/KaramelBytes/dataquery-cli/cmd"

func main() {
	cmd.Execute()
}
