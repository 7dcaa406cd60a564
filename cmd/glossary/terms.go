package main

import (
	"connectrpc.com/connect"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	apiv1 "github.com/at-ishikawa/glossary/internal/api/v1"
)

func newGetCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get TERM",
		Short: "Show a single term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			res, err := client.GetTerm(cmd.Context(), connect.NewRequest(&apiv1.GetTermRequest{Term: args[0]}))
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).term(res.Msg.GetTerm())
			return nil
		},
	}
}

func newAddCommand(opts *options) *cobra.Command {
	var (
		definition string
		category   string
		related    []string
		source     string
	)
	cmd := &cobra.Command{
		Use:   "add TERM",
		Short: "Add a new term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			res, err := client.AddTerm(cmd.Context(), connect.NewRequest(&apiv1.AddTermRequest{
				Term:         args[0],
				Definition:   definition,
				Category:     category,
				RelatedTerms: related,
				Source:       source,
			}))
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			p.message(res.Msg.GetMessage())
			p.term(res.Msg.GetTerm())
			return nil
		},
	}
	cmd.Flags().StringVar(&definition, "definition", "", "definition of the term")
	cmd.Flags().StringVar(&category, "category", "", "category of the term")
	cmd.Flags().StringSliceVar(&related, "related", nil, "related terms, comma separated or repeated")
	cmd.Flags().StringVar(&source, "source", "", "attribution of the definition")
	_ = cmd.MarkFlagRequired("definition")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newUpdateCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update TERM",
		Short: "Change fields of an existing term",
		Long:  "Change fields of an existing term. Only the flags that are given are sent; other fields keep their values.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := updateRequest(args[0], cmd.Flags())
			if err != nil {
				return err
			}
			client, err := opts.client()
			if err != nil {
				return err
			}
			res, err := client.UpdateTerm(cmd.Context(), connect.NewRequest(req))
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			p.message(res.Msg.GetMessage())
			p.term(res.Msg.GetTerm())
			return nil
		},
	}
	cmd.Flags().String("definition", "", "new definition")
	cmd.Flags().String("category", "", "new category")
	cmd.Flags().StringSlice("related", nil, "replace the related terms")
	cmd.Flags().Bool("clear-related", false, "remove all related terms")
	cmd.Flags().String("source", "", "new attribution")
	cmd.MarkFlagsMutuallyExclusive("related", "clear-related")
	return cmd
}

// updateRequest sets only the fields whose flags were given on the command line.
func updateRequest(term string, flags *pflag.FlagSet) (*apiv1.UpdateTermRequest, error) {
	req := &apiv1.UpdateTermRequest{Term: term}
	for name, field := range map[string]**string{
		"definition": &req.Definition,
		"category":   &req.Category,
		"source":     &req.Source,
	} {
		if !flags.Changed(name) {
			continue
		}
		value, err := flags.GetString(name)
		if err != nil {
			return nil, err
		}
		*field = &value
	}

	if flags.Changed("related") {
		related, err := flags.GetStringSlice("related")
		if err != nil {
			return nil, err
		}
		req.RelatedTerms = &related
	}
	if clearRelated, _ := flags.GetBool("clear-related"); clearRelated {
		req.RelatedTerms = &[]string{}
	}
	return req, nil
}

func newDeleteCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete TERM",
		Short: "Delete a term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			res, err := client.DeleteTerm(cmd.Context(), connect.NewRequest(&apiv1.DeleteTermRequest{Term: args[0]}))
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).message(res.Msg.GetMessage())
			return nil
		},
	}
}

func newListCommand(opts *options) *cobra.Command {
	var page, pageSize int32
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List terms in insertion order, one page at a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			res, err := client.ListTerms(cmd.Context(), connect.NewRequest(&apiv1.ListTermsRequest{
				Page:     page,
				PageSize: pageSize,
			}))
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).page(res.Msg.GetTerms(), res.Msg.GetTotalCount(), page, pageSize)
			return nil
		},
	}
	cmd.Flags().Int32Var(&page, "page", 1, "page number, starting at 1")
	cmd.Flags().Int32Var(&pageSize, "page-size", 10, "number of terms per page")
	return cmd
}

func newSearchCommand(opts *options) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Find terms whose term, definition or category contains QUERY, ignoring case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			res, err := client.SearchTerms(cmd.Context(), connect.NewRequest(&apiv1.SearchTermsRequest{
				Query:    args[0],
				Category: category,
			}))
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).terms(res.Msg.GetTerms(), res.Msg.GetTotalCount())
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only return terms in exactly this category")
	return cmd
}

func newCategoryCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "category NAME",
		Short: "List the terms of one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			res, err := client.ListTermsByCategory(cmd.Context(), connect.NewRequest(&apiv1.ListTermsByCategoryRequest{
				Category: args[0],
			}))
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).terms(res.Msg.GetTerms(), res.Msg.GetTotalCount())
			return nil
		},
	}
}
