// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/arclist/go-arclist/cmd"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// main starts the arclist cli
func main() {
	cmd.Run(version, commit, date)
}
