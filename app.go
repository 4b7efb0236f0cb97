package main

import "github.com/mihirlaud/conseil/cmd"

func main() {
	cmd.Run()
}
