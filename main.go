// SPDX-License-Identifier: MPL-2.0

package main

import cmd "prodpack-cli/cmd/prodpack"

func main() {
	cmd.Execute()
}
