// phasemag draws domain colouring plots of complex functions.
//
// Each point of the plane is coloured by the argument of f(z), with
// lightness contours following log2 |f(z)|.
package main

import "github.com/davidlowryduda/phase-mag-plot/internal/cli"

func main() {
	cli.Execute()
}
