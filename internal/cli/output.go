package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	successMark = color.New(color.FgGreen).SprintFunc()
	warningMark = color.New(color.FgYellow).SprintFunc()
	errorMark   = color.New(color.FgRed).SprintFunc()
	headerText  = color.New(color.FgMagenta, color.Bold).SprintFunc()
	dimText     = color.New(color.FgHiBlack).SprintFunc()
)

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Println(msg)
}

// printSuccess prints a success message
func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	fmt.Printf("%s %s\n", successMark("✓"), msg)
}

// printWarning prints a warning message
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	fmt.Printf("%s %s\n", warningMark("⚠"), msg)
}

// printErrorMsg prints an error message (different from printError which takes error type)
func printErrorMsg(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorMark("✗"), msg)
}

// printHeader prints a section header
func printHeader(title string) {
	if globalQuiet {
		return
	}
	fmt.Printf("\n%s\n", headerText("=== "+title+" ==="))
}

// printDetail prints an indented key/value line
func printDetail(key, value string) {
	if globalQuiet {
		return
	}
	fmt.Printf("  %s %s\n", dimText(key+":"), value)
}
