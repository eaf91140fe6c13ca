// Command termsheet runs the classification, extraction, validation and
// comparison pipeline on local files without the API server or database.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
