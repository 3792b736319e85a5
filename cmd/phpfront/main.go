// Command phpfront is a thin library entry point around the parser
// core: it hands raw source bytes in and prints the resulting AST and
// diagnostics back out.
package main

import "github.com/phpfront/phpfront/cmd/phpfront/cmd"

func main() {
	cmd.Execute()
}
