package main

import (
	"fmt"
	"os"

	"github.com/P1NHE4D/it3105-project01/cmd"
)

func main() {
	if err := cmd.RootCommand().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
