package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/go-highway/rtneural/hwy/contrib/nn/static"
)

func newListCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the shapes that have generated static layers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			shapes := static.Shapes()
			if kind != "" {
				shapes = lo.Filter(shapes, func(s static.Shape, _ int) bool { return s.Kind == kind })
				if len(shapes) == 0 {
					return fmt.Errorf("no static layers of kind %q", kind)
				}
			}
			groups := lo.GroupBy(shapes, func(s static.Shape) string { return s.Kind })
			kinds := lo.Uniq(lo.Map(shapes, func(s static.Shape, _ int) string { return s.Kind }))

			title := cases.Title(language.English)
			w := cmd.OutOrStdout()
			for _, k := range kinds {
				names := lo.Map(groups[k], func(s static.Shape, _ int) string {
					return strings.TrimPrefix(s.String(), k+" ")
				})
				fmt.Fprintf(w, "%s (%d): %s\n", title.String(strings.ReplaceAll(k, "_", " ")), len(names), strings.Join(names, ", "))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "Only list one kind, e.g. gru")
	return cmd
}
