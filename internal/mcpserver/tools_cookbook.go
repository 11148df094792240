package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerCookbookTools() {
	s.mcp.AddTool(mcp.NewTool("nc_list_recipes",
		mcp.WithDescription("List cookbook recipes."),
	), s.listRecipes)

	s.mcp.AddTool(mcp.NewTool("nc_get_recipe",
		mcp.WithDescription("Get details of a recipe."),
		mcp.WithNumber("recipe_id", mcp.Required(), mcp.Description("Recipe ID")),
	), s.getRecipe)

	s.mcp.AddTool(mcp.NewTool("nc_create_recipe",
		mcp.WithDescription("Create a new recipe manually."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Recipe name")),
		mcp.WithString("description", mcp.Description("Recipe description")),
		mcp.WithString("ingredients", mcp.Description("Ingredients, one per line")),
		mcp.WithString("instructions", mcp.Description("Instructions, one step per line")),
	), s.createRecipe)

	s.mcp.AddTool(mcp.NewTool("nc_import_recipe",
		mcp.WithDescription("Import a recipe from a URL."),
		mcp.WithString("url", mcp.Required(), mcp.Description("Recipe page URL with schema.org markup")),
	), s.importRecipe)
}

func (s *Server) listRecipes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	recipes, err := s.client.ListRecipes()
	if err != nil {
		return fail(err)
	}
	output := s.renderer.Recipes(recipes)
	return mcp.NewToolResultText(s.record("nc_list_recipes", output)), nil
}

func (s *Server) getRecipe(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("recipe_id")
	if err != nil {
		return fail(err)
	}
	recipe, err := s.client.GetRecipe(int64(id))
	if err != nil {
		return fail(err)
	}
	output := s.renderer.Recipe(recipe)
	return mcp.NewToolResultText(s.record("nc_get_recipe", output)), nil
}

func (s *Server) createRecipe(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return fail(err)
	}
	description := req.GetString("description", "")
	ingredients := req.GetString("ingredients", "")
	instructions := req.GetString("instructions", "")

	recipe, err := s.client.CreateRecipe(name, description, ingredients, instructions)
	if err != nil {
		return fail(err)
	}
	return mcp.NewToolResultText(s.renderer.Success(fmt.Sprintf("created recipe %d: %s", recipe.ID, recipe.Name))), nil
}

func (s *Server) importRecipe(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := req.RequireString("url")
	if err != nil {
		return fail(err)
	}
	recipe, err := s.client.ImportRecipe(url)
	if err != nil {
		return fail(err)
	}
	return mcp.NewToolResultText(s.renderer.Success(fmt.Sprintf("imported recipe %d: %s", recipe.ID, recipe.Name))), nil
}
