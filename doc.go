// Package md2adf converts Markdown documents to the Atlassian Document
// Format (ADF), the JSON tree used by Jira and Confluence.
//
// # Quick Start
//
// Convert a string with default settings:
//
//	doc, err := md2adf.Convert("# Hello\n\nWorld")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, _ := json.Marshal(doc)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (line normalization, optional front matter removal)
//  2. Tokenization via Goldmark with the GFM extensions
//  3. Block conversion: headings, paragraphs, lists, task lists, code,
//     quotes, rules and tables
//  4. Inline resolution: text leaves with em, strong, strike, code and
//     link marks
//
// Images never sit inside a paragraph in ADF; each one becomes a
// standalone mediaSingle node and splits the surrounding paragraph.
// A list becomes a taskList only when every item has a checkbox.
//
// With WithBaseURL, relative image and link targets are resolved against
// the given URL once the document is built.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2adf.NewConverter(
//	    md2adf.WithMediaLayout(md2adf.LayoutWide),
//	    md2adf.WithLanguageNormalization(true),
//	    md2adf.WithIDGenerator(adf.SequenceFunc("task-")),
//	)
//
//	result, err := conv.Convert(ctx, md2adf.Input{Markdown: content})
//	data, err := result.JSON(true)
//
// A Converter is safe for concurrent use; each conversion draws task
// identifiers from its own generator.
package md2adf
