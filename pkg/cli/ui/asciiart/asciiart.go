// Package asciiart renders the CLI banner.
package asciiart

import (
	"io"

	fcolor "github.com/fatih/color"
)

const logo = ` _                       _       _ _
| |__  _   _  __ _  ___ (_)_ __ (_) |_
| '_ \| | | |/ _` + "`" + ` |/ _ \| | '_ \| | __|
| | | | |_| | (_| | (_) | | | | | |_
|_| |_|\__,_|\__, |\___/|_|_| |_|_|\__|
             |___/
`

// PrintLogo writes the hugoinit banner to the given writer.
func PrintLogo(writer io.Writer) {
	banner := fcolor.New(fcolor.FgCyan)

	_, _ = banner.Fprintln(writer, logo)
}
