package domain

// AIAnalysis is the structured content analysis the language model must
// return. The JSON shape is dictated by the analysis prompt; anything that
// does not unmarshal into it is rejected wholesale.
type AIAnalysis struct {
	Summary    AnalysisSummary    `json:"summary"`
	SEO        AnalysisSEO        `json:"seo"`
	Engagement AnalysisEngagement `json:"engagement"`
	Content    AnalysisContent    `json:"content"`
}

type AnalysisSummary struct {
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
	Score      float64  `json:"score"`
}

type AnalysisSEO struct {
	TitleSuggestions       []string         `json:"titleSuggestions"`
	DescriptionSuggestions []string         `json:"descriptionSuggestions"`
	TagsToRemove           []string         `json:"tagsToRemove"`
	TagsToAdd              []string         `json:"tagsToAdd"`
	KeywordDensity         []KeywordDensity `json:"keywordDensity"`
}

type KeywordDensity struct {
	Keyword string  `json:"keyword"`
	Count   int     `json:"count"`
	Density float64 `json:"density"`
}

type AnalysisEngagement struct {
	Rating         string   `json:"rating"`
	ViewsPerDay    float64  `json:"viewsPerDay"`
	EngagementRate float64  `json:"engagementRate"`
	Suggestions    []string `json:"suggestions"`
}

type AnalysisContent struct {
	Topics      []string `json:"topics"`
	Sentiment   string   `json:"sentiment"`
	Suggestions []string `json:"suggestions"`
}

// AnalysisData pairs the raw video metadata with its analysis
type AnalysisData struct {
	Original *VideoData  `json:"original"`
	Analysis *AIAnalysis `json:"analysis"`
}
