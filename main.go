package main

import "github.com/max-dev001/ZeBadge/cmd"

func main() {
	cmd.Execute()
}
