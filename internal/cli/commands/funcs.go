package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/garydbutler/TabularForge-sub001/internal/cli/output"
	"github.com/garydbutler/TabularForge-sub001/pkg/functions"
)

// FuncsOptions holds options for the funcs command.
type FuncsOptions struct {
	Family string // Only list functions in this family
	Search string // Name prefix filter
}

// NewFuncsCommand creates the funcs command.
func NewFuncsCommand() *cobra.Command {
	opts := &FuncsOptions{}
	cmd := &cobra.Command{
		Use:   "funcs [name]",
		Short: "Browse the DAX function catalog",
		Long: `List known DAX functions, or show details for one function.

With a name argument the full signature, return type and description
are printed. Without one, the catalog is listed as a table, optionally
filtered by family or name prefix.`,
		Example: `  # List the whole catalog
  tabularforge funcs

  # Show one function
  tabularforge funcs calculate

  # List time intelligence functions
  tabularforge funcs --family time-intelligence

  # Functions starting with DATES
  tabularforge funcs --search DATES`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showFunction(cmd, args[0])
			}
			return listFunctions(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Family, "family", "", "Only list functions in this family")
	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "Only list functions with this name prefix")

	return cmd
}

func showFunction(cmd *cobra.Command, name string) error {
	sig, ok := functions.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown function %q", strings.ToUpper(name))
	}

	r := output.NewRenderer(cmd.OutOrStdout())
	r.Println(sig.String())
	r.Printf("Family:      %s\n", sig.Family)
	r.Printf("Description: %s\n", sig.Description)
	if n := sig.RequiredParameters(); n < len(sig.Parameters) {
		r.Printf("Parameters:  %d required, %d optional\n", n, len(sig.Parameters)-n)
	} else {
		r.Printf("Parameters:  %d required\n", n)
	}
	return nil
}

func listFunctions(cmd *cobra.Command, opts *FuncsOptions) error {
	sigs := functions.Search(opts.Search)
	if opts.Family != "" {
		family := functions.Family(strings.ToLower(opts.Family))
		filtered := sigs[:0]
		for _, sig := range sigs {
			if sig.Family == family {
				filtered = append(filtered, sig)
			}
		}
		sigs = filtered
	}

	if len(sigs) == 0 {
		return fmt.Errorf("no functions matched")
	}

	rows := make([][]string, 0, len(sigs))
	for _, sig := range sigs {
		params := make([]string, len(sig.Parameters))
		for i, p := range sig.Parameters {
			params[i] = p.Name
			if p.Optional {
				params[i] = "[" + p.Name + "]"
			}
		}
		rows = append(rows, []string{
			sig.Name,
			string(sig.Family),
			string(sig.Returns),
			strings.Join(params, ", "),
		})
	}

	r := output.NewRenderer(cmd.OutOrStdout())
	r.Table([]string{"Function", "Family", "Returns", "Parameters"}, rows)
	r.Printf("%d function(s)\n", len(rows))
	return nil
}

// Families returns the distinct families present in the catalog, sorted.
func Families() []string {
	seen := make(map[string]bool)
	for _, sig := range functions.All() {
		seen[string(sig.Family)] = true
	}
	families := make([]string, 0, len(seen))
	for f := range seen {
		families = append(families, f)
	}
	sort.Strings(families)
	return families
}
