// Package ui provides terminal output helpers for the Facebook page probe.
// This file demonstrates example usage of the UI components
package ui

/*
Example usage of the UI components:

// Terminal colors and output, all written to stderr
ui.PrintLogo()                                       // Print ASCII logo
ui.PrintInfo("Probing page", "PhuketTimeNews")       // Cyan label with value
ui.PrintSuccess("Found multi-image post: 4 images")  // Green success message
ui.PrintError("Probe failed", err)                   // Red error message, shown even in quiet mode
ui.PrintWarning("No config file found")              // Yellow warning message
ui.PrintHighlight("Statistics:")                     // Magenta highlight message
ui.PrintDim("  Text: Beach cleanup this weekend...") // Dim secondary detail
ui.PrintPlain("  Total posts: 5")                    // Uncolored plain line

// Quiet mode suppresses everything except errors, leaving stdout's
// JSON report as the only output
ui.SetQuietMode(true)
defer ui.SetQuietMode(false)

// Color handling
ui.SetColorEnabled(false)  // Force plain output, e.g. for --no-color

Color is detected automatically: output is colored only when stderr is a
terminal and NO_COLOR is not set.
*/
