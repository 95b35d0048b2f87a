package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soapboxrace/launcher-preflight/internal/endpoints"
	"github.com/soapboxrace/launcher-preflight/internal/messages"
)

func newEndpointsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.EndpointsUse,
		Short: messages.EndpointsShort,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New(messages.EndpointsTooManyArguments)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				category, ok := endpoints.Lookup(args[0])
				if !ok {
					return fmt.Errorf(messages.EndpointsUnknownFmt, args[0], strings.Join(endpoints.Names(), ", "))
				}
				printCategory(out, category)
				return nil
			}
			for _, name := range endpoints.Names() {
				category, _ := endpoints.Lookup(name)
				printCategory(out, category)
			}
			return nil
		},
	}
}

func printCategory(out io.Writer, c endpoints.Category) {
	_, _ = fmt.Fprintf(out, messages.EndpointsCategoryHeader, c.Name)
	for i, url := range c.URLs() {
		_, _ = fmt.Fprintf(out, messages.EndpointsEntryFmt, i+1, url)
	}
}
