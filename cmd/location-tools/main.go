// cmd/location-tools/main.go
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := NewApp().Execute(); err != nil {
		if !errors.Is(err, errToolFailed) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}
