package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jfmyers9/rdio/pkg/rdio"
)

// splitList splits a comma separated flag value, dropping empty items.
// An empty value yields nil.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// parseObjectTypes matches each comma separated name, in any case, against
// allowed.
func parseObjectTypes(s string, allowed []rdio.ObjectType) ([]rdio.ObjectType, error) {
	var types []rdio.ObjectType
	for _, name := range splitList(s) {
		t, ok := matchObjectType(name, allowed)
		if !ok {
			return nil, fmt.Errorf("unknown type %q (want one of %s)", name, joinTypes(allowed))
		}
		types = append(types, t)
	}
	return types, nil
}

func matchObjectType(name string, allowed []rdio.ObjectType) (rdio.ObjectType, bool) {
	for _, t := range allowed {
		if strings.EqualFold(name, string(t)) {
			return t, true
		}
	}
	return "", false
}

func joinTypes(types []rdio.ObjectType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// intFlag returns the value of an int flag, or nil when it was not given.
func intFlag(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	n, _ := cmd.Flags().GetInt(name)
	return &n
}

// boolFlag returns the value of a bool flag, or nil when it was not given.
func boolFlag(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	b, _ := cmd.Flags().GetBool(name)
	return &b
}

// extrasFlag returns the --extras list.
func extrasFlag(cmd *cobra.Command) []string {
	s, _ := cmd.Flags().GetString("extras")
	return splitList(s)
}

func addPageFlags(cmd *cobra.Command) {
	cmd.Flags().Int("start", 0, "offset of the first result")
	cmd.Flags().Int("count", 0, "maximum number of results")
	addExtrasFlag(cmd)
}

func addExtrasFlag(cmd *cobra.Command) {
	cmd.Flags().String("extras", "", "comma separated extra fields to request")
}

// entitiesOf widens a list of concrete entities.
func entitiesOf[T rdio.Entity](items []T) []rdio.Entity {
	list := make([]rdio.Entity, len(items))
	for i, item := range items {
		list[i] = item
	}
	return list
}

// filterEntities applies --filter, if given.
func filterEntities(list []rdio.Entity) ([]rdio.Entity, error) {
	if resultFilter == nil {
		return list, nil
	}
	return resultFilter.Apply(list)
}

// printEntities filters and prints list.
func printEntities(list []rdio.Entity) error {
	list, err := filterEntities(list)
	if err != nil {
		return err
	}
	return printer.Entities(list)
}

// requireNoFilter rejects --filter for commands whose results are not
// entities.
func requireNoFilter(cmd *cobra.Command) error {
	if resultFilter != nil {
		return fmt.Errorf("--filter is not supported by '%s'", cmd.CommandPath())
	}
	return nil
}
