// tickcard is a decorative clock for the terminal: a large time and date
// card with optional world clocks, color presets, and a fullscreen mode
// whose controls hide while the mouse is still.
//
// Usage:
//
//	tickcard [flags]
//	tickcard now | presets | zones | config | version
//
// Run "tickcard --help" for flags.
package main

import "gitlab.com/tinyland/lab/tickcard/cmd"

func main() {
	cmd.Execute()
}
