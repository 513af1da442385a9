// Command lokit is a document conversion and inspection tool built on the
// lokit LibreOfficeKit bindings.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
