// Package viz is the terminal presentation layer for randomart.
//
//   - [Colorize]: lipgloss styling of a rendered art block
//   - [Histogram]: visit-count distribution plot
//   - [Live]: interactive Bubble Tea view that redraws art as you type
//
// The plain text block from the art package stays the source of truth;
// nothing here changes its layout.
package viz
