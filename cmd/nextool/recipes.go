package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRecipesCmd(holder *appHolder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "Browse and manage cookbook recipes",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, client, err := holder.getWithClient()
			if err != nil {
				return err
			}
			recipes, err := client.ListRecipes()
			if err != nil {
				return err
			}
			fmt.Print(app.renderer.Recipes(recipes))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, client, err := holder.getWithClient()
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			recipe, err := client.GetRecipe(id)
			if err != nil {
				return err
			}
			fmt.Print(app.renderer.Recipe(recipe))
			return nil
		},
	})

	var description, ingredients, instructions string
	createCmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, client, err := holder.getWithClient()
			if err != nil {
				return err
			}
			recipe, err := client.CreateRecipe(args[0], description, ingredients, instructions)
			if err != nil {
				return err
			}
			fmt.Print(app.renderer.Success(fmt.Sprintf("created recipe %d: %s", recipe.ID, recipe.Name)))
			return nil
		},
	}
	createCmd.Flags().StringVarP(&description, "description", "d", "", "recipe description")
	createCmd.Flags().StringVar(&ingredients, "ingredients", "", "ingredients, one per line")
	createCmd.Flags().StringVar(&instructions, "instructions", "", "instructions, one step per line")
	cmd.AddCommand(createCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "import <url>",
		Short: "Import a recipe from a URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, client, err := holder.getWithClient()
			if err != nil {
				return err
			}
			recipe, err := client.ImportRecipe(args[0])
			if err != nil {
				return err
			}
			fmt.Print(app.renderer.Success(fmt.Sprintf("imported recipe %d: %s", recipe.ID, recipe.Name)))
			return nil
		},
	})

	return cmd
}
