package main

import "github.com/fatih/color"

var (
	bold  = color.New(color.Bold).SprintFunc()
	faint = color.New(color.Faint).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
)

func success(msg string) string {
	return green("✓") + " " + msg
}

func failure(msg string) string {
	return red("✗") + " " + msg
}
