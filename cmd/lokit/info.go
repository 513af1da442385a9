package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lokit-go/lokit/pkg/lokit"
	"github.com/lokit-go/lokit/pkg/lokit/urls"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Inspect a document's type and structure",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	office, err := lokit.New(installPath())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := office.Close(); cerr != nil {
			log.WithError(cerr).Warn("closing office")
		}
	}()

	u, err := urls.LocalIntoAbs(args[0])
	if err != nil {
		return err
	}

	doc, err := office.DocumentLoad(u)
	if err != nil {
		return err
	}
	defer doc.Close()

	parts, err := doc.Parts()
	if err != nil {
		return err
	}
	width, height, err := doc.Size()
	if err != nil {
		return err
	}

	fmt.Printf("file:    %s\n", args[0])
	fmt.Printf("type:    %s\n", doc.Type())
	fmt.Printf("parts:   %d\n", parts)
	fmt.Printf("size:    %d x %d twips\n", width, height)
	if v := office.LibraryVersion(); v != "" {
		fmt.Printf("library: %s\n", v)
	}
	return nil
}
