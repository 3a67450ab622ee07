package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goaisc/internal/diagram"
	"github.com/alexiusacademia/goaisc/internal/shape"
)

var (
	shapeGetEDI         string
	shapeGetLabel       string
	shapeGetShowDiagram bool
	shapeGetExportFile  string
)

var shapeGetCmd = &cobra.Command{
	Use:   "get <family>",
	Short: "Show every property of one shape",
	Long: `Show every property of one shape, found by its EDI standard
nomenclature or its manual label.

Properties the family does not require but the shape lacks are shown
as "–", as in the database.

Examples:
  goaisc shape get wide-flange --label W14X90
  goaisc shape get W --edi W14X90 --diagram
  goaisc shape get hss --label HSS6X4X1/4 -o hss.svg
  goaisc shape get angle --label L4X4X1/2 --file shapes.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runShapeGet,
}

func init() {
	shapeCmd.AddCommand(shapeGetCmd)

	shapeGetCmd.Flags().StringVar(&shapeGetEDI, "edi", "", "EDI standard nomenclature")
	shapeGetCmd.Flags().StringVar(&shapeGetLabel, "label", "", "AISC manual label")
	shapeGetCmd.MarkFlagsMutuallyExclusive("edi", "label")
	shapeGetCmd.MarkFlagsOneRequired("edi", "label")

	// Diagram options
	shapeGetCmd.Flags().BoolVar(&shapeGetShowDiagram, "diagram", false, "Show ASCII cross-section sketch")
	shapeGetCmd.Flags().StringVarP(&shapeGetExportFile, "output", "o", "", "Export cross-section to file (png, svg, pdf)")
}

func runShapeGet(cmd *cobra.Command, args []string) error {
	f, err := familyArg(args)
	if err != nil {
		return err
	}

	by, key := shape.AISCManualLabel, shapeGetLabel
	if shapeGetEDI != "" {
		by, key = shape.EDINomenclature, shapeGetEDI
	}
	rec, err := findShape(cmd.Context(), f, by, key)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	id := rec.Ident()
	fmt.Fprintln(out)
	fmt.Fprint(out, diagram.DrawSummaryBox(id.Label, []string{
		f.Title(),
		"EDI nomenclature: " + id.Nomenclature,
	}))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "PROPERTIES:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Property\tValue\t\n")
	fmt.Fprintf(w, "  ────────\t─────\t\n")
	for _, field := range shape.Fields(rec) {
		if field.Property.Kind() == shape.KindText {
			continue
		}
		note := ""
		if field.Optional {
			note = "optional"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", field.Property.Display(), formatField(field), note)
	}
	w.Flush()
	fmt.Fprintln(out)

	if !shapeGetShowDiagram && shapeGetExportFile == "" {
		return nil
	}

	outline, err := diagram.OutlineOf(rec)
	if err != nil {
		var dimErr *diagram.DimensionError
		if errors.As(err, &dimErr) {
			fmt.Fprintf(out, "Cannot draw cross-section: %s\n", dimErr.Reason)
			return nil
		}
		return err
	}

	if shapeGetShowDiagram {
		fmt.Fprint(out, diagram.DrawASCII(outline, 48, 24))
		fmt.Fprintln(out)
	}

	if shapeGetExportFile != "" {
		path, err := diagram.Export(outline, fmt.Sprintf("%s - %s", id.Label, f.Title()), shapeGetExportFile)
		if err != nil {
			return fmt.Errorf("error exporting diagram: %w", err)
		}
		fmt.Fprintf(out, "Diagram exported to: %s\n", path)
	}
	return nil
}
