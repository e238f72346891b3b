package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/HyperLuna/jexpr/certify"
	"github.com/fatih/color"
)

var (
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

func fatal(msg interface{}) {
	var s string
	switch msg := msg.(type) {
	case string:
		s = msg
	case error:
		s = renderError(msg)
	default:
		s = fmt.Sprintf("%v", msg)
	}
	fmt.Fprintf(os.Stderr, "%s\n", s)
	os.Exit(1)
}

// renderError colors certification failures by kind and keeps other
// errors plain.
func renderError(err error) string {
	var cerr *certify.Error
	if !errors.As(err, &cerr) {
		return red(err.Error())
	}
	out := red(cerr.Kind.String()+": ") + cerr.Message
	if cerr.NodeType != "" {
		out += yellow(" [" + cerr.NodeType + "]")
	}
	if cerr.Position.IsValid() {
		out += fmt.Sprintf(" at %d:%d", cerr.Position.LineNumber(), cerr.Position.ColumnNumber())
	}
	return out
}
