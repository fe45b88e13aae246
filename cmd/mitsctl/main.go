// Command mitsctl administers the MITS Assistant knowledge base directly
// against the configured store.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(openApp).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
