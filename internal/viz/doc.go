// Package viz draws the string viewer in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Figure]: asciigraph plots that act as a viewer.Surface
//   - [Slider]: the time control drawn under the plots
//   - [Canvas]: Braille-based dot canvas for the point trace strip
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	←/h →/l            - Step back/forward
//	H/pgdn L/pgup      - Ten steps back/forward
//	home/g end/G       - First/last step
//	t                  - Cycle color themes
//	?                  - Toggle full help
//	q/ctrl+c           - Quit
package viz
