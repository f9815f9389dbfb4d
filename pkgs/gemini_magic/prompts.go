package gemini_magic

const competitorPrompt = `
	You are a market research analyst. Identify the main direct competitors of the company described below.

	**Company:**
	%s

	**Output:**
	Your entire output MUST be a single, minified JSON object of the form {"competitors": ["Name", ...]}.
	List at most %d competitor brand names, most relevant first. Do not include the company itself.
	Your response must be raw JSON, starting with '{' and ending with '}'.
	`

const ratingPrompt = `
	You are an expert video advertising analyst. Rate the YouTube video described below against each analysis parameter.

	**Video Data:**
	%s

	**Parameters:**
	%s

	**Output:**
	Your entire output MUST be a single, minified JSON object of the form {"ratings": {"<parameter key>": <number>}}.
	Rate every parameter key listed above on a scale from 0 (absent) to 10 (excellent). Use only the given keys.
	Your response must be raw JSON, starting with '{' and ending with '}'.
	`

const insightPrompt = `
	You are a YouTube marketing strategist. Read the analysis report of a competitor's video ad below and
	write the %d most useful, concrete takeaways for a company planning its own video ads.

	**Report:**
	%s

	**Output:**
	One takeaway per line, each line starting with "- ". No headings, no preamble, no closing remarks.
	`

const sentimentPrompt = `
	You are an expert YouTube audience analyst. Classify the sentiment of each of the comments below.

	**Comments:**
	%s

	**Output:**
	Your entire output MUST be a single, minified JSON object of the form
	{"positive_comments": <int>, "negative_comments": <int>, "neutral_comments": <int>}.
	The three counts must add up to the number of comments provided (%d).
	Your response must be raw JSON, starting with '{' and ending with '}'.
	`
