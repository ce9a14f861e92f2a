// NextDay - terminal sign-up client for the NextDay meal delivery service.
//
// Usage:
//
//	nextday register [--resume id]
//	nextday calc --age 30 --gender male --height 170 --weight 70
//	nextday meal <id>
//	nextday sessions
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
