package main

import (
	"fmt"
	"os"

	"tradehabit/cmd/tradehabit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
