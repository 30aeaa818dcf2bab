package main

import (
	"fmt"
	"os"

	"github.com/ogurasousui/hr-smart-records/cmd/hrctl/cmd"
)

func main() {
	if err := cmd.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
