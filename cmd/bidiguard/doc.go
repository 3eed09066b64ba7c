// Package bidiguard provides the command-line interface for the Bidiguard
// tool. It configures subcommands (scan, review, baseline, ci, update),
// parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/bidiguard/bidiguard/cmd/bidiguard"
//	func main() { bidiguard.Execute() }
package bidiguard
