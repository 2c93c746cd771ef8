// Command stockpile inspects and rearranges inventory layouts.
package main

import "github.com/mesh-intelligence/stockpile/internal/cli"

func main() {
	cli.Execute()
}
