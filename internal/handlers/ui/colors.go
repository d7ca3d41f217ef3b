package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like the parsed input
)

// Shortcut Specific Colors
var (
	TokenColor = color.New(color.FgYellow, color.Bold).SprintFunc()
	KindColor  = color.New(color.FgBlue).SprintFunc()
	URLColor   = color.New(color.FgWhite, color.Underline).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)
