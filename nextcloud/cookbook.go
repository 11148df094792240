package nextcloud

import (
	"fmt"
	"strings"
)

// ListRecipes fetches all Cookbook recipes.
func (c *Client) ListRecipes() ([]Recipe, error) {
	const op = "ListRecipes"

	var recipes []Recipe
	if err := c.doJSON(op, "GET", c.cookbookURL("recipes"), nil, &recipes); err != nil {
		if IsNotFound(err) {
			return nil, NewRequestError(op, 404, "cookbook app not found or not enabled on this instance")
		}
		return nil, err
	}
	return recipes, nil
}

// GetRecipe fetches one recipe with its ingredients and instructions.
func (c *Client) GetRecipe(id int64) (*Recipe, error) {
	const op = "GetRecipe"

	var recipe Recipe
	if err := c.doJSON(op, "GET", c.cookbookURL(fmt.Sprintf("recipes/%d", id)), nil, &recipe); err != nil {
		if IsNotFound(err) {
			return nil, NewRequestError(op, 404, fmt.Sprintf("recipe %d not found", id))
		}
		return nil, err
	}
	return &recipe, nil
}

// CreateRecipe creates a recipe. Ingredients and instructions are
// newline-separated text; the Cookbook API wants them as lists.
func (c *Client) CreateRecipe(name, description, ingredients, instructions string) (*Recipe, error) {
	payload := map[string]any{
		"name":         name,
		"description":  description,
		"ingredients":  splitLines(ingredients),
		"instructions": splitLines(instructions),
	}

	var recipe Recipe
	if err := c.doJSON("CreateRecipe", "POST", c.cookbookURL("recipes"), payload, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ImportRecipe asks the Cookbook app to scrape a recipe from a URL.
func (c *Client) ImportRecipe(url string) (*Recipe, error) {
	payload := map[string]any{"url": url}

	var recipe Recipe
	if err := c.doJSON("ImportRecipe", "POST", c.cookbookURL("import"), payload, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// splitLines turns newline-separated text into a list of trimmed,
// non-empty lines.
func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	if out == nil {
		out = []string{}
	}
	return out
}
