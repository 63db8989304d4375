package usecase

// PresetPrompt is one of the fixed summary-style instructions offered to users
type PresetPrompt struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
}

const abstractSummaryPrompt = `You are a highly skilled AI trained in language comprehension and summarization. Read the following text and summarize it into a concise abstract paragraph. Aim to retain the most important points, providing a coherent and readable summary that could help a person understand the main points of the discussion without needing to read the entire text. Please avoid unnecessary details or tangential points. Here's the transcript:`

const keyPointsPrompt = `You are a proficient AI with a specialty in distilling information into key points. Based on the following text, identify and list the main points that were discussed or brought up. These should be the most important ideas, findings, or topics that are crucial to the essence of the discussion. Your goal is to provide a list that someone could read to quickly understand what was talked about. Here's the transcript:`

const actionItemsPrompt = `You are an AI expert in analyzing conversations and extracting action items. Review the text and identify any tasks, assignments, or actions that were agreed upon or mentioned as needing to be done. These could be tasks assigned to specific individuals, or general actions that the group has decided to take. List these action items clearly and concisely. Here's the transcript:`

const sentimentAnalysisPrompt = `As an AI with expertise in language and emotion analysis, analyze the sentiment of the following text. Consider the overall tone of the discussion, the emotion conveyed by the language used, and the context in which words and phrases are used. Indicate whether the sentiment is generally positive, negative, or neutral, and provide brief explanations for your analysis where possible. Here's the transcript:`

// PresetPrompts returns the four fixed summary-style prompts
func PresetPrompts() []PresetPrompt {
	return []PresetPrompt{
		{ID: "abstract", Label: "Abstract summary", Prompt: abstractSummaryPrompt},
		{ID: "key_points", Label: "Key points", Prompt: keyPointsPrompt},
		{ID: "action_items", Label: "Action items", Prompt: actionItemsPrompt},
		{ID: "sentiment", Label: "Sentiment analysis", Prompt: sentimentAnalysisPrompt},
	}
}
