package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/appdeck/internal/messages"
)

func newListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.ListUse,
		Short: messages.ListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(flags.catalogPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			heading := color.New(color.Bold, color.FgMagenta)
			for _, category := range cat.Categories {
				_, _ = fmt.Fprintln(out, heading.Sprint(category.Name))
				for _, app := range category.Apps {
					_, _ = fmt.Fprintf(out, messages.ListAppLineFmt, color.CyanString(app.Name), app.Description, app.Package)
				}
				_, _ = fmt.Fprintln(out)
			}
			return nil
		},
	}
}
