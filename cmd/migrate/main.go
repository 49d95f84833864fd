package main

import (
	"fmt"
	"os"

	"github.com/selfservice/fastfood-api/internal/app/migrate"
)

func main() {
	if err := migrate.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
