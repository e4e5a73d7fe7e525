package main

import "github.com/jrsinclair/arrutil/cmd/arrutil/cmd"

func main() {
	cmd.Execute()
}
