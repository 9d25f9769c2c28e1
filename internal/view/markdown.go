package view

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/recipebox/internal/model"
)

// Markdown renders r as a standalone markdown document.
func Markdown(r model.Recipe) string {
	d := StaticDetail(r)
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", d.Title)
	fmt.Fprintf(&b, "**%s** · Prep %s · Cook %s · Total %s · %s\n\n", d.Label, d.Prep, d.Cook, d.Total, d.Rating.Text)
	if d.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", d.Description)
	}
	if d.ImageURL != "" {
		fmt.Fprintf(&b, "![%s](%s)\n\n", d.Title, d.ImageURL)
	}

	b.WriteString("## Ingredients\n\n")
	if len(d.Ingredients) == 0 {
		b.WriteString("_" + NoIngredients + "_\n")
	}
	for _, ing := range d.Ingredients {
		fmt.Fprintf(&b, "- %s\n", ing)
	}

	b.WriteString("\n## Steps\n\n")
	if len(d.Steps) == 0 {
		b.WriteString("_" + NoSteps + "_\n")
	}
	for i, step := range d.Steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	return b.String()
}

// MarkdownAll joins the documents for recipes with horizontal rules.
func MarkdownAll(recipes []model.Recipe) string {
	docs := make([]string, len(recipes))
	for i, r := range recipes {
		docs[i] = Markdown(r)
	}
	return strings.Join(docs, "\n---\n\n")
}
