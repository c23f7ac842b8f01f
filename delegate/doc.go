// Package delegate implements the Delegate structural pattern: an object
// hands one of its responsibilities to a replaceable helper object.
//
// What:
//
//   - PrintStrategy: the delegate capability — Print(text).
//   - ConsolePrint, FilePrint: concrete delegates.
//   - Printer: the delegator. It owns no printing logic of its own; Print
//     forwards to whichever delegate is currently set.
//
// Why:
//   - Change an object's behavior by swapping its helper, not its class
//   - The object-composition cousin of Strategy, shown with a second domain
//   - Show the graceful no-delegate path
//
// Contract:
//
//   - SetPrintStrategy replaces the current delegate; nil clears it.
//   - Print with no delegate set writes "No print strategy set!" and
//     returns. Never an error.
package delegate
