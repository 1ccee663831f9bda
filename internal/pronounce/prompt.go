package pronounce

import "fmt"

// promptTemplate is the fixed instruction sent for every word. The endpoint
// is asked for a bare JSON object so the response can be parsed strictly.
const promptTemplate = `
You are a language assistant. I will provide an English word. Your task is to:

1. Convert the English word into its correct pronunciation in English in USA style (like Toilet: 'TOy Luht').
2. Convert that pronunciation into a Telugu representation of the sounds.

Respond in JSON format as shown in the example.

Example input: 'toilet'
Example output:
{
  "word": "toilet",
  "pronunciation": "TOy Luht",
  "pronunciation_telugu": "టాయ్ లహ్ట్"
}

Note: Do not include any additional text or explanations, only the JSON object. Do not include any markdown formatting. Ensure the Telugu representation captures the phonetic sounds accurately.
Now process the following word: '%s'
`

// BuildPrompt renders the instruction prompt for a single word.
func BuildPrompt(word string) string {
	return fmt.Sprintf(promptTemplate, word)
}
