// Package ui provides the widget contract and shared layout constants.
package ui

// Layout constants shared by the widgets.
const (
	// BorderWidth is the horizontal space consumed by a rounded border.
	BorderWidth = 2

	// FieldHeight is the height of a bordered single-line input row.
	FieldHeight = 3

	// TrayRows is the number of option rows shown in a dropdown tray.
	TrayRows = 6

	// MinFieldWidth is the narrowest a widget is drawn.
	MinFieldWidth = 12
)
