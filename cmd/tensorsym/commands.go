package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tensorsym/permutation"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate declarations and report redundant generators",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, _, err := a.load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range res {
				fmt.Fprintf(out, "%s %v: ok, %d generators", r.Name, r.Store.Structure(), r.Added)
				if r.Redundant > 0 {
					fmt.Fprintf(out, ", %d redundant", r.Redundant)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

func (a *app) groupCmd() *cobra.Command {
	var elements bool
	cmd := &cobra.Command{
		Use:   "group <file>",
		Short: "Print the order of every declared symmetry group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, reg, err := a.load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range reg.Entries() {
				fmt.Fprintf(out, "%s %v: order %d\n", e.Name, e.Store.Structure(), e.Store.Order())
				if !elements {
					continue
				}
				e.Store.Each(func(s permutation.Symmetry) bool {
					fmt.Fprintf(out, "  %v\n", s)
					return true
				})
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&elements, "elements", "e", false, "list every group element")

	return cmd
}

func (a *app) diffIDsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diffids <file>",
		Short: "Print the diff-id partition of every tensor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, reg, err := a.load(args[0])
			if err != nil {
				return err
			}
			if err := reg.Warm(cmd.Context()); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range reg.Entries() {
				fmt.Fprintf(out, "%s %v: %v\n", e.Name, e.Store.Structure(), e.Store.DiffIDs())
			}
			return nil
		},
	}
}
