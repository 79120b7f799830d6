package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"regexviz/internal/nfa"
	"regexviz/internal/regex"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	headerStyle  = color.New(color.FgCyan, color.Bold)
	postfixStyle = color.New(color.FgGreen)
	caretStyle   = color.New(color.FgYellow, color.Bold)
)

func printError(w io.Writer, err error) {
	errorStyle.Fprint(w, "error: ")
	fmt.Fprintln(w, err)
}

// errorPos extracts the rune offset carried by a compile error.
func errorPos(err error) (int, bool) {
	var (
		unbalanced  *regex.UnbalancedParenError
		unsupported *regex.UnsupportedTokenError
		malformed   *nfa.MalformedExpressionError
	)
	switch {
	case errors.As(err, &unbalanced):
		return unbalanced.Pos, true
	case errors.As(err, &unsupported):
		return unsupported.Pos, true
	case errors.As(err, &malformed) && malformed.Op != 0:
		return malformed.Pos, true
	}
	return 0, false
}

// formatCompileError renders err followed by the expression with a caret
// under the offending character, when the error knows where it is.
func formatCompileError(expr string, err error) string {
	var sb strings.Builder
	sb.WriteString(errorStyle.Sprint("error: "))
	sb.WriteString(err.Error())
	sb.WriteString("\n")

	pos, ok := errorPos(err)
	if !ok || pos > utf8.RuneCountInString(expr) {
		return sb.String()
	}
	sb.WriteString(headerStyle.Sprint(" --> "))
	sb.WriteString(expr)
	sb.WriteString("\n     ")
	sb.WriteString(strings.Repeat(" ", pos))
	sb.WriteString(caretStyle.Sprint("^"))
	sb.WriteString("\n")
	return sb.String()
}

// reportedError marks an error that has already been shown to the user.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }
