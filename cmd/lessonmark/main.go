package main

import (
	"fmt"
	"os"

	"github.com/dgallion1/lessonmark/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lessonmark:", err)
		os.Exit(1)
	}
}
