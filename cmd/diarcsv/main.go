package main

import "github.com/forPelevin/diarcsv/internal/cli"

func main() {
	cli.Main()
}
