package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// stdout receives all user-facing output. Tests swap it for a buffer.
var stdout io.Writer = os.Stdout

// Terminal palette (ANSI 256).
var (
	colorAccent = lipgloss.Color("36")
	colorOK     = lipgloss.Color("35")
	colorAttn   = lipgloss.Color("220")
	colorFail   = lipgloss.Color("167")
	colorCmd    = lipgloss.Color("75")
	colorText   = lipgloss.Color("255")
	colorLabel  = lipgloss.Color("245")
	colorMuted  = lipgloss.Color("240")
)

// Exported styles are shared with the editor view.
var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorAccent)
	StyleDim       = lipgloss.NewStyle().Foreground(colorMuted)
	StyleValue     = lipgloss.NewStyle().Foreground(colorText)
	StyleSuccess   = lipgloss.NewStyle().Foreground(colorOK)
	StyleWarning   = lipgloss.NewStyle().Foreground(colorAttn)
)

var (
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorAccent)
	styleCommand     = lipgloss.NewStyle().Foreground(colorCmd)
	styleKey         = lipgloss.NewStyle().Foreground(colorLabel).Width(12)
	styleTableHeader = lipgloss.NewStyle().Foreground(colorLabel).Bold(true)
	styleTableBorder = lipgloss.NewStyle().Foreground(colorMuted)
)

const iconSelected = "●"

// status line markers
var (
	markOK   = lipgloss.NewStyle().Foreground(colorOK).Render("✓")
	markFail = lipgloss.NewStyle().Foreground(colorFail).Render("✗")
	markWarn = lipgloss.NewStyle().Foreground(colorAttn).Render("!")
	markInfo = lipgloss.NewStyle().Foreground(colorLabel).Render("›")
	markFile = StyleDim.Render("→")
)

func printMarked(mark, text string) {
	fmt.Fprintln(stdout, mark+" "+text)
}

func printSuccess(format string, args ...any) { printMarked(markOK, fmt.Sprintf(format, args...)) }
func printError(format string, args ...any)   { printMarked(markFail, fmt.Sprintf(format, args...)) }
func printInfo(format string, args ...any)    { printMarked(markInfo, fmt.Sprintf(format, args...)) }

func printWarning(format string, args ...any) {
	printMarked(markWarn, StyleWarning.Render(fmt.Sprintf(format, args...)))
}

// printFile lists a written output path, indented under a success line.
func printFile(path string) {
	fmt.Fprintln(stdout, "  "+markFile+" "+StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Fprintln(stdout, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// printStats prints parts on one dimmed line separated by middle dots.
func printStats(parts ...string) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(strings.Join(parts, " · ")))
}

func printNextStep(description, cmd string) {
	fmt.Fprintln(stdout, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

func printNewline() { fmt.Fprintln(stdout) }

// headerRow is the row index lipgloss tables pass to StyleFunc for headers.
const headerRow = -1
