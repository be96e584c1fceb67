// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assistant

// ConversionPrompt is the fixed instruction handed to the assistant along
// with the scratch file (R4.1). The assistant must replace the file's
// content with the Markdown rendition and nothing else; the publisher
// copies the result verbatim, so any commentary would leak into the output.
const ConversionPrompt = "Please convert the entire content of this file into well-formatted markdown. " +
	"Replace the existing content of this file with *only* the generated markdown. " +
	"Do not add any conversational text, commentary, introductions, or summaries."
