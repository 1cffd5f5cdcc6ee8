package main

import "github.com/MeKo-Tech/colorconv/internal/cmd"

func main() {
	cmd.Execute()
}
