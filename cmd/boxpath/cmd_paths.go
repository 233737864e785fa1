package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootPathCmd = &cobra.Command{
	Use:   "root",
	Short: "Print the located sync root",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolver.Root()
		if err != nil {
			return err
		}
		fmt.Println(root)
		return nil
	},
}

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List the logical group and personal paths",
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := sessionPaths()
		if err != nil {
			return err
		}

		fmt.Printf("root: %s\n\n", paths.Root)

		fmt.Println("group:")
		for _, id := range paths.Group.Identifiers() {
			path, _ := paths.Group.Lookup(id)
			fmt.Printf("  %-24s %s\n", id, path)
		}

		if paths.Personal == nil {
			fmt.Println("\npersonal: not configured (set personal_folder or BOXPATH_PERSONAL_FOLDER)")
			return nil
		}

		fmt.Println("\npersonal:")
		for _, id := range paths.Personal.Identifiers() {
			path, _ := paths.Personal.Lookup(id)
			fmt.Printf("  %-24s %s\n", id, path)
		}
		return nil
	},
}
