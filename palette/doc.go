// Package palette loads the brand color palette document and answers
// color-system questions: shade families, design tokens, and a summary
// overview. Color queries are routed here instead of the asset catalog.
package palette
