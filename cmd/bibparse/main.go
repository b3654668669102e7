package main

import (
	"os"

	"github.com/Kingsford-Group/bibparse/cmd/bibparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
