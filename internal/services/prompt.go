package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildEntityExtractionPrompt creates the prompt for named-entity recognition
func (pb *PromptBuilder) BuildEntityExtractionPrompt(text string) string {
	return fmt.Sprintf(`You are a named-entity recognizer for recruitment documents.

Extract every named entity from the text below and label it with exactly one of:
- PERSON: a person's name
- ORG: a company, institution or other organization
- PRODUCT: a product, tool, framework or technology

Return ONLY a JSON array, no prose, in the following format:
[
  {"text": "<entity span exactly as it appears>", "label": "<PERSON|ORG|PRODUCT>"}
]

Return [] if there are no entities. Do not invent entities that are not in the text.

TEXT:
%s`, text)
}
