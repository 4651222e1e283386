package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/kamusis/rnadoc/internal/docs"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Build the index and print its size",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var typeCmd = &cobra.Command{
	Use:   "type <type-name>",
	Short: "Show a type's description, properties and functions",
	Args:  cobra.ExactArgs(1),
	RunE:  runType,
}

var propsCmd = &cobra.Command{
	Use:   "props <type-name>",
	Short: "List the properties of a type",
	Args:  cobra.ExactArgs(1),
	RunE:  runProps,
}

var funcsCmd = &cobra.Command{
	Use:   "funcs <type-name>",
	Short: "List the functions of a type",
	Args:  cobra.ExactArgs(1),
	RunE:  runFuncs,
}

var ownersCmd = &cobra.Command{
	Use:   "owners <property-name>",
	Short: "List the types that declare a property",
	Args:  cobra.ExactArgs(1),
	RunE:  runOwners,
}

var possibleCmd = &cobra.Command{
	Use:   "possible <property-name>",
	Short: "Show every type and description a property name may have",
	Long: `Show every type-tag and description observed for a property name across
all owning types. Useful when only the name of a property is known.

Example:
  rnadoc possible name
  rnadoc possible active_object`,
	Args: cobra.ExactArgs(1),
	RunE: runPossible,
}

var subpropsCmd = &cobra.Command{
	Use:   "subprops <property-name>",
	Short: "List the properties reachable through a property name",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubprops,
}

func init() {
	rootCmd.AddCommand(statsCmd, typeCmd, propsCmd, funcsCmd, ownersCmd, possibleCmd, subpropsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	d, err := loadDocumentation(cmd.Context())
	if err != nil {
		return err
	}
	s := d.Stats()
	printSection("Index")
	printOK("", fmt.Sprintf("%d types", s.Types))
	printOK("", fmt.Sprintf("%d properties", s.Properties))
	printOK("", fmt.Sprintf("%d functions", s.Functions))
	printOK("", fmt.Sprintf("%d owners", s.Owners))
	return nil
}

func runType(cmd *cobra.Command, args []string) error {
	d, err := loadDocumentation(cmd.Context())
	if err != nil {
		return err
	}
	name := args[0]
	t, ok := d.Type(name)
	props := d.PropertiesOfType(name)
	fns := d.FunctionsOfType(name)
	if !ok && len(props) == 0 && len(fns) == 0 {
		return fmt.Errorf("type %q not found.\nTip: run 'rnadoc search %s' to look for similar names.", name, name)
	}

	printSection(name)
	if t.Description != "" {
		fmt.Fprintf(stdout, "Summary:  %s\n", t.Description)
	}
	printBullet(fmt.Sprintf("Properties (%d):", len(props)))
	printProperties(props)
	printBullet(fmt.Sprintf("Functions (%d):", len(fns)))
	printFunctions(fns)
	return nil
}

func runProps(cmd *cobra.Command, args []string) error {
	d, err := loadDocumentation(cmd.Context())
	if err != nil {
		return err
	}
	props := d.PropertiesOfType(args[0])
	if len(props) == 0 {
		printMiss(args[0], "no properties")
		return nil
	}
	printProperties(props)
	return nil
}

func runFuncs(cmd *cobra.Command, args []string) error {
	d, err := loadDocumentation(cmd.Context())
	if err != nil {
		return err
	}
	fns := d.FunctionsOfType(args[0])
	if len(fns) == 0 {
		printMiss(args[0], "no functions")
		return nil
	}
	printFunctions(fns)
	return nil
}

func runOwners(cmd *cobra.Command, args []string) error {
	d, err := loadDocumentation(cmd.Context())
	if err != nil {
		return err
	}
	owners := d.TypesWithProperty(args[0])
	if len(owners) == 0 {
		printMiss(args[0], "no type declares this property")
		return nil
	}
	for _, o := range owners {
		fmt.Fprintf(stdout, "  %s\n", o)
	}
	return nil
}

func runPossible(cmd *cobra.Command, args []string) error {
	d, err := loadDocumentation(cmd.Context())
	if err != nil {
		return err
	}
	name := args[0]
	props := d.PossibleProperties(name)
	if len(props) == 0 {
		printMiss(name, "unknown property")
		return nil
	}
	printBullet("Types:")
	for _, t := range d.PossiblePropertyTypes(name) {
		fmt.Fprintf(stdout, "  - %s\n", t)
	}
	printBullet("Descriptions:")
	for _, desc := range d.PossiblePropertyDescriptions(name) {
		if desc == "" {
			desc = "(none)"
		}
		fmt.Fprintf(stdout, "  - %s\n", desc)
	}
	printBullet(fmt.Sprintf("Declared on (%d):", len(props)))
	printProperties(props)
	return nil
}

func runSubprops(cmd *cobra.Command, args []string) error {
	d, err := loadDocumentation(cmd.Context())
	if err != nil {
		return err
	}
	names := d.SubpropertyNamesOfProperty(args[0])
	if len(names) == 0 {
		printMiss(args[0], "no subproperties")
		return nil
	}
	for _, n := range names {
		fmt.Fprintf(stdout, "  %s\n", n)
	}
	return nil
}

func printProperties(props []docs.PropertyDoc) {
	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	for _, p := range props {
		typ := p.Type
		if typ == "" {
			typ = "?"
		}
		if len(p.EnumItems) > 0 {
			typ += " [" + strings.Join(p.EnumItems, ", ") + "]"
		}
		ro := ""
		if p.ReadOnly {
			ro = "readonly"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", p, typ, ro, strings.TrimSpace(p.Description))
	}
	_ = w.Flush()
}

func printFunctions(fns []docs.FunctionDoc) {
	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	for _, f := range fns {
		fmt.Fprintf(w, "  %s.%s\t%s\n", f.Owner, f, strings.TrimSpace(f.Description))
	}
	_ = w.Flush()
}
