package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/danmuck/cbusctl/internal/protocol/schema"
	"github.com/spf13/cobra"
)

func newOpcodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "opcodes [mnemonic]",
		Short: "List the opcode registry, or show one entry",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := schema.Entries()
			if len(args) == 1 {
				entry, ok := schema.LookupMnemonic(args[0])
				if !ok {
					return fmt.Errorf("%w: %s", schema.ErrUnknownOpcode, args[0])
				}
				entries = []schema.Entry{entry}
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "OPC\tMNEMONIC\tPRI\tFIELDS\tDESCRIPTION")
			for _, e := range entries {
				fmt.Fprintf(w, "%02X\t%s\t%d\t%s\t%s\n", e.Opcode, e.Mnemonic, e.Priority, strings.Join(e.Fields, ","), e.Description)
			}
			return w.Flush()
		},
	}
}
