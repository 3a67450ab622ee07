package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goaisc/internal/shape"
)

var (
	shapeListDepth    float64
	shapeListWidth    float64
	shapeListProperty string
	shapeListValue    float64
)

var shapeListCmd = &cobra.Command{
	Use:   "list <family>",
	Short: "List the shapes of a family",
	Long: `List the shapes of a family with their overall dimensions and
weight, optionally keeping only shapes whose depth, width or another
numeric property equals a value.

Depth is d for open shapes, Ht for rectangular HSS and OD for round
sections. Width is bf for flanged shapes, b for angles and B for
rectangular HSS.

Examples:
  goaisc shape list wide-flange
  goaisc shape list W --depth 5.9
  goaisc shape list angle --width 4
  goaisc shape list hss --property tdes --value 0.233`,
	Args: cobra.ExactArgs(1),
	RunE: runShapeList,
}

func init() {
	shapeCmd.AddCommand(shapeListCmd)

	shapeListCmd.Flags().Float64Var(&shapeListDepth, "depth", 0, "Keep shapes with this overall depth (in)")
	shapeListCmd.Flags().Float64Var(&shapeListWidth, "width", 0, "Keep shapes with this overall width (in)")
	shapeListCmd.Flags().StringVar(&shapeListProperty, "property", "", "Keep shapes whose property (e.g. tw, Ix) equals --value")
	shapeListCmd.Flags().Float64Var(&shapeListValue, "value", 0, "Value for --property")
	shapeListCmd.MarkFlagsMutuallyExclusive("depth", "width", "property")
	shapeListCmd.MarkFlagsRequiredTogether("property", "value")
}

// listFilter resolves the filter flags to a property and value. It
// returns an invalid property when no filter is set.
func listFilter(cmd *cobra.Command, f shape.Family) (shape.Property, float64, error) {
	flags := cmd.Flags()
	switch {
	case flags.Changed("depth"):
		return depthProperty(f), shapeListDepth, nil
	case flags.Changed("width"):
		return widthProperty(f), shapeListWidth, nil
	case flags.Changed("property"):
		if p, ok := shape.PropertyByDisplay(shapeListProperty); ok {
			return p, shapeListValue, nil
		}
		if p, ok := shape.PropertyByName(shapeListProperty); ok {
			return p, shapeListValue, nil
		}
		return 0, 0, fmt.Errorf("unknown property %q", shapeListProperty)
	}
	return shape.Property(-1), 0, nil
}

func runShapeList(cmd *cobra.Command, args []string) error {
	f, err := familyArg(args)
	if err != nil {
		return err
	}
	p, v, err := listFilter(cmd, f)
	if err != nil {
		return err
	}

	recs, err := listShapes(cmd.Context(), f, p, v)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", f.Title())
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	if len(recs) == 0 {
		fmt.Fprintln(out, "  No shapes found.")
		fmt.Fprintln(out)
		return nil
	}

	depth, width := depthProperty(f), widthProperty(f)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Label\tEDI nomenclature\t%s (in)\t%s (in)\tW (lb/ft)\n", depth.Display(), width.Display())
	fmt.Fprintf(w, "  ─────\t────────────────\t──────\t──────\t─────────\n")
	for _, rec := range recs {
		id := rec.Ident()
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n",
			id.Label, id.Nomenclature, fieldOf(rec, depth), fieldOf(rec, width), fieldOf(rec, shape.W))
	}
	w.Flush()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %d shape(s)\n", len(recs))
	fmt.Fprintln(out)
	return nil
}
