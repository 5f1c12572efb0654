package main

import "github.com/KannamTejaswi311/NutriTrack/internal/cli"

func main() {
	cli.Execute()
}
