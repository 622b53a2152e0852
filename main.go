package main

import "github.com/inovacc/skycast/cmd"

func main() {
	cmd.Execute()
}
