// SPDX-License-Identifier: MIT

// Command lvpca runs standardize-then-decompose PCA on CSV tables.
package main

import "github.com/katalvlaran/lvpca/internal/cli"

func main() {
	cli.Execute()
}
