package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/oceanbgc/boxpath/internal/logger"
	"github.com/oceanbgc/boxpath/internal/project"
)

var (
	projectTemplate    string
	projectDescription string
	projectAuthor      string
	projectIn          string
	projectNoDiscover  bool
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Scaffold and convert research project directories",
}

var projectCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new project with the standard directory tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tmpl, err := project.ParseTemplate(projectTemplate)
		if err != nil {
			return err
		}

		parent := projectIn
		if parent == "" {
			paths, err := sessionPaths()
			if err != nil {
				return err
			}
			if paths.Personal == nil {
				return fmt.Errorf("no target directory: set personal_folder or pass --in")
			}
			parent = paths.Personal.Projects()
		}

		p, err := project.Create(parent, args[0], tmpl)
		if err != nil {
			return err
		}

		if projectDescription != "" || projectAuthor != "" {
			if _, err := p.WriteMetadata(projectDescription, projectAuthor, nil); err != nil {
				return err
			}
		}

		logger.Get().Info("created project", "path", p.Base, "template", string(tmpl))
		fmt.Println(p.Base)
		return nil
	},
}

var projectConvertCmd = &cobra.Command{
	Use:   "convert <path>",
	Short: "Treat an existing folder as a project, discovering its subfolders",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tmpl, err := project.ParseTemplate(projectTemplate)
		if err != nil {
			return err
		}

		p, discovered, err := project.Convert(args[0], tmpl, !projectNoDiscover)
		if err != nil {
			return err
		}

		fmt.Println(p.Base)
		if len(discovered) > 0 {
			ids := make([]string, 0, len(discovered))
			for id := range discovered {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			for _, id := range ids {
				fmt.Printf("  %-24s %s\n", id, discovered[id])
			}
		}
		return nil
	},
}

func init() {
	projectCmd.PersistentFlags().StringVar(&projectTemplate, "template", "full",
		"project template: full, simple, or minimal")
	projectCreateCmd.Flags().StringVar(&projectDescription, "description", "", "project description")
	projectCreateCmd.Flags().StringVar(&projectAuthor, "author", "", "project author")
	projectCreateCmd.Flags().StringVar(&projectIn, "in", "",
		"parent directory (defaults to the personal projects folder)")
	projectConvertCmd.Flags().BoolVar(&projectNoDiscover, "no-discover", false,
		"skip auto-discovery of existing subfolders")

	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectConvertCmd)
}
