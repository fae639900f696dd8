// Command webhdfs is a thin command-line front-end over the sync client.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "webhdfs:", err)
		os.Exit(1)
	}
}
