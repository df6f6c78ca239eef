// In file: internal/tools/definitions.go
package tools

// builtin is the stock catalog, in the order it is presented to users.
var builtin = []Descriptor{
	{
		ID:                  "bulk-email-checker",
		Name:                "Bulk Email Validator",
		Description:         "Analyze email addresses for syntax validity and likelihood of existence using AI pattern matching.",
		Category:            CategoryMarketing,
		InputShape:          InputTextarea,
		Placeholder:         "Enter email addresses (one per line)...",
		OutputLabel:         "Validation Report",
		InstructionTemplate: "You are an email validation expert. Analyze the provided list of email addresses. For each email, determine if the syntax is valid and if the domain looks legitimate. Output a list with status (Valid/Invalid) and a brief reason. Do not actually send emails.",
	},
	{
		ID:                  "keyword-research",
		Name:                "Keyword Research",
		Description:         "Find related keywords with search intent analysis and content suggestions.",
		Category:            CategorySEO,
		InputShape:          InputText,
		Placeholder:         "Enter a seed keyword (e.g., \"vegan shoes\")...",
		OutputLabel:         "Keyword Strategy",
		InstructionTemplate: "You are an SEO expert. Provide a list of 10 related keywords for the given seed keyword. For each, estimate \"User Intent\" (Informational, Transactional, etc.) and suggest a blog post title.",
	},
	{
		ID:                  "youtube-ideas",
		Name:                "YouTube Idea Generator",
		Description:         "Generate viral YouTube video ideas with titles and thumbnail concepts.",
		Category:            CategorySocial,
		InputShape:          InputText,
		Placeholder:         "Enter your channel niche (e.g., \"Tech Reviews\")...",
		OutputLabel:         "Video Concepts",
		InstructionTemplate: "You are a YouTube growth strategist. Generate 5 high-CTR video ideas for the provided niche. For each idea, provide: 1. Catchy Title, 2. Hook (first 10 seconds), 3. Thumbnail description.",
	},
	{
		ID:                  "subject-line-grader",
		Name:                "Subject Line Grader",
		Description:         "Analyze email subject lines with AI scoring for open rates and spam triggers.",
		Category:            CategoryMarketing,
		InputShape:          InputText,
		Placeholder:         "Enter your email subject line...",
		OutputLabel:         "Grade & Suggestions",
		InstructionTemplate: "You are an email marketing copywriter. Grade the provided subject line on a scale of A to F. Explain the grade. List 3 specific improvements to increase open rates. Check for spam trigger words.",
	},
	{
		ID:                  "python-ide",
		Name:                "Python Assistant",
		Description:         "Generate Python scripts, debug code, or explain complex functions.",
		Category:            CategoryDeveloper,
		InputShape:          InputTextarea,
		Placeholder:         "Describe the script you need (e.g., \"Scrape a website for headers\")...",
		OutputLabel:         "Python Code",
		InstructionTemplate: "You are a Senior Python Developer. Write clean, commented, and efficient Python code based on the user request. Wrap code in markdown blocks.",
	},
	{
		ID:                  "code-share",
		Name:                "Code Refactor & Share",
		Description:         "Beautify code snippets and get optimization suggestions.",
		Category:            CategoryDeveloper,
		InputShape:          InputCode,
		Placeholder:         "Paste your code snippet here...",
		OutputLabel:         "Refactored Code",
		InstructionTemplate: "You are a Code Quality expert. Refactor the provided code to be cleaner, more efficient, and strictly typed. Explain the changes made.",
	},
	{
		ID:                  "json-compare",
		Name:                "JSON Formatter & Fixer",
		Description:         "Validate, format, and fix errors in JSON data objects.",
		Category:            CategoryDeveloper,
		InputShape:          InputTextarea,
		Placeholder:         "Paste messy JSON here...",
		OutputLabel:         "Clean JSON",
		InstructionTemplate: "You are a data parser. Take the provided JSON string. If it is invalid, fix the errors (missing quotes, commas). Output the pretty-printed, valid JSON.",
	},
	{
		ID:                  "md5-generator",
		Name:                "Regex Generator",
		Description:         "Create complex Regular Expressions from plain English descriptions.",
		Category:            CategoryDeveloper,
		InputShape:          InputText,
		Placeholder:         "Describe what you want to match (e.g. \"valid US phone numbers\")...",
		OutputLabel:         "Regex Pattern",
		InstructionTemplate: "You are a Regex expert. Generate a regular expression for the requested pattern. Explain how it works step-by-step. Provide examples of matches and non-matches.",
	},
	{
		ID:                  "bg-remover-code",
		Name:                "Auto Background Remover",
		Description:         "Generate a 100% working Python script to remove image backgrounds instantly.",
		Category:            CategoryDesigner,
		InputShape:          InputText,
		Placeholder:         "Enter image filename (e.g., \"photo.jpg\")...",
		OutputLabel:         "Python Script (Copy & Run)",
		InstructionTemplate: "You are a Python Automation Expert. Write a complete, error-free Python script using the \"rembg\" and \"PIL\" (Pillow) libraries to remove the background from an image. Include: 1. A comment at the top with the exact pip install command (`pip install rembg pillow`). 2. The script should read the input file provided by the user, remove the background, and save it as \"output_no_bg.png\". 3. Wrap the code in a markdown block. This must be 100% working code.",
	},
	{
		ID:                  "ai-image-prompt",
		Name:                "AI Image Prompt Gen",
		Description:         "Transform short text prompts into stunning Midjourney/DALL-E descriptions.",
		Category:            CategoryDesigner,
		InputShape:          InputText,
		Placeholder:         "A cat eating pizza...",
		OutputLabel:         "Optimized Prompts",
		InstructionTemplate: "You are an AI Art Prompt Engineer. Take the user simple idea and expand it into 3 distinct, highly detailed prompts suitable for high-end image generators (Midjourney v6). Include lighting, style, camera settings, and composition keywords.",
	},
	{
		ID:                  "palette-generator",
		Name:                "Color Palette Gen",
		Description:         "Generate accessible color palettes based on a mood or keyword.",
		Category:            CategoryDesigner,
		InputShape:          InputText,
		Placeholder:         "Enter a mood (e.g., \"Cyberpunk\", \"Organic Spa\")...",
		OutputLabel:         "Color Palette",
		InstructionTemplate: "You are a color theorist. Generate a 5-color palette based on the user mood/theme. Provide Hex codes and a brief description of where to use each color (Background, Accent, Text).",
	},
	{
		ID:                  "font-pairer",
		Name:                "Font Pairing Tool",
		Description:         "Suggest font combinations for web and print projects.",
		Category:            CategoryDesigner,
		InputShape:          InputText,
		Placeholder:         "Project type (e.g., \"Modern Tech Blog\")...",
		OutputLabel:         "Font Recommendations",
		InstructionTemplate: "You are a typographer. Suggest 3 font pairings (Header + Body) for the project described. Explain why they work well together. Focus on Google Fonts.",
	},
	{
		ID:                  "blog-title-gen",
		Name:                "Blog Title Generator",
		Description:         "Generate compelling blog titles using AI optimization patterns.",
		Category:            CategoryWriting,
		InputShape:          InputText,
		Placeholder:         "Enter your blog topic...",
		OutputLabel:         "Title Options",
		InstructionTemplate: "Generate 10 catchy, SEO-friendly blog titles for the given topic. Include a mix of \"How-to\", \"Listicles\", and \"Question-based\" titles.",
	},
	{
		ID:                  "emoji-library",
		Name:                "Emoji Translator",
		Description:         "Translate sentences into emoji-rich text for social media.",
		Category:            CategorySocial,
		InputShape:          InputText,
		Placeholder:         "Enter your sentence...",
		OutputLabel:         "Emojified Text",
		InstructionTemplate: "Rewrite the user text by adding relevant emojis to emphasize points. Make it engaging for Instagram/Twitter/LinkedIn.",
	},
	{
		ID:                  "poll-generator",
		Name:                "Poll Generator",
		Description:         "Generate engaging multiple-choice polls to uncover audience pain points.",
		Category:            CategorySocial,
		InputShape:          InputText,
		Placeholder:         "Poll topic (e.g., \"Remote Work Challenges\")...",
		OutputLabel:         "Poll Options",
		InstructionTemplate: "Create a LinkedIn/Twitter poll about the topic. Provide the Question and 4 distinct, engaging voting options.",
	},
	{
		ID:                  "story-plot",
		Name:                "Story Plot Generator",
		Description:         "Overcome writer's block with unique plot twists and character arcs.",
		Category:            CategoryWriting,
		InputShape:          InputText,
		Placeholder:         "Genre (e.g., \"Sci-Fi Mystery\")...",
		OutputLabel:         "Plot Outline",
		InstructionTemplate: "You are a creative writing coach. Generate a unique story plot outline for the given genre. Include a Protagonist, an Inciting Incident, a Climax, and a Resolution.",
	},
	{
		ID:                  "startup-ideas",
		Name:                "Startup Idea Gen",
		Description:         "Combine industries to create unique micro-SaaS business concepts.",
		Category:            CategoryMarketing,
		InputShape:          InputText,
		Placeholder:         "Industry (e.g., \"Pet Care\")...",
		OutputLabel:         "Business Concepts",
		InstructionTemplate: "Generate 3 unique micro-SaaS startup ideas for the industry. For each, describe the Problem, the Solution, and the Revenue Model.",
	},
	{
		ID:                  "job-desc",
		Name:                "Job Description Gen",
		Description:         "Write professional job descriptions optimized for recruitment.",
		Category:            CategoryMarketing,
		InputShape:          InputText,
		Placeholder:         "Job Title (e.g., \"Senior React Developer\")...",
		OutputLabel:         "Job Description",
		InstructionTemplate: "Write a comprehensive job description for the title. Include Responsibilities, Requirements (Tech stack), and \"Why join us\". Keep it professional yet exciting.",
	},
	{
		ID:                  "domain-gen",
		Name:                "AI Domain Generator",
		Description:         "Generate creative domain name suggestions using AI branding logic.",
		Category:            CategorySEO,
		InputShape:          InputText,
		Placeholder:         "Project description (e.g., \"Coffee subscription service\")...",
		OutputLabel:         "Domain Names",
		InstructionTemplate: "Generate 15 creative, short, and brandable domain name ideas for the project. Avoid hyphens. Focus on modern startup naming trends (e.g., -ly, -ify, creative misspellings).",
	},
	{
		ID:                  "interview-prep",
		Name:                "Interview Prep",
		Description:         "Simulate interview questions for specific roles.",
		Category:            CategoryDeveloper,
		InputShape:          InputText,
		Placeholder:         "Role (e.g., \"Product Manager\")...",
		OutputLabel:         "Interview Questions",
		InstructionTemplate: "List 5 technical and 5 behavioral interview questions for the role. For the toughest technical question, provide a model answer.",
	},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(builtin)
	if err != nil {
		// The built-in list is static; a failure here is a programming error.
		panic("tools: invalid built-in catalog: " + err.Error())
	}
	return c
}
