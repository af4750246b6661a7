// Package viz styles the roster's terminal output.
//
//   - [Heading], [Label], [Muted], [ErrorText]: themed text via lipgloss
//   - [Sparkline]: one-line bar strip of numeric values
//   - [Chart]: multi-line plot of numeric values via asciigraph
//
// Output is plain text when [SetPlain] is on or when lipgloss detects a
// terminal without color support.
package viz
