package main

import (
	"os"

	"github.com/blogem/finportal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
