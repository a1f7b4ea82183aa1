// Package cli renders indicator evaluations for the command line.
//
// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayResult], [DisplayError].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatQuietResult], [FormatTextResult].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteReportToFile].
package cli
