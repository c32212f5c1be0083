package main

import (
	"os"

	"github.com/nguyentantai21042004/vidkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
