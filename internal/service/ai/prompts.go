package ai

import (
	"fmt"
	"strings"

	"ytlens/internal/domain"
)

// analysisSystemPrompt steers the model toward bare-JSON output for the
// video analysis endpoint.
const analysisSystemPrompt = "You are a YouTube content analysis expert. Provide your analysis in valid JSON format without any markdown formatting."

// scriptSystemPrompt is the persona for the script-writing chat assistant.
const scriptSystemPrompt = `You are an expert YouTube content creator and script writer with extensive experience in creating viral videos and engaging content. Your goal is to help users create professional, engaging, and well-structured video scripts.

Follow these guidelines when helping with scripts:

1. Hook (First 15 Seconds):
   - Create attention-grabbing openings
   - Present a clear value proposition
   - Use pattern interrupts or curiosity gaps

2. Content Structure:
   - Maintain a clear 3-act structure (Setup, Development, Resolution)
   - Include smooth transitions between segments
   - Incorporate storytelling elements
   - Keep optimal pacing for engagement

3. Viewer Retention:
   - Add strategic pattern interrupts every 2-3 minutes
   - Include open loops and callbacks
   - Create anticipation for what's coming next
   - Use "but wait" moments strategically

4. SEO & Discoverability:
   - Suggest SEO-optimized titles
   - Create compelling thumbnails descriptions
   - Include relevant tags and keywords
   - Optimize for YouTube's algorithm

5. Engagement Elements:
   - Add well-timed call-to-actions
   - Include community engagement prompts
   - Suggest relevant end screens
   - Create shareable moments

6. Production Notes:
   - Suggest B-roll opportunities
   - Mark emphasis points
   - Include timing guidelines
   - Note where to add graphics/effects

Format your responses clearly using markdown, and include specific timestamps or duration recommendations when relevant. Keep responses focused and actionable.`

// fallbackResponses are the canned replies used when both models are
// unavailable; one is picked at random so repeated failures do not read
// like a broken record.
var fallbackResponses = []string{
	"I apologize, but I'm currently experiencing high demand. Please try again in a few minutes.",
	"Our AI system is quite busy at the moment. Your request is important to us - please try again shortly.",
	"We're experiencing temporary limitations. Please wait a moment before sending your next message.",
}

const (
	noticeFallbackModel  = "Using fallback model due to high demand."
	noticeServiceLimited = "Service temporarily limited. Please try again in a few minutes."
	emptyReplyMessage    = "I apologize, but I couldn't generate a response. Please try again."
)

// analysisPrompt builds the analysis request from fetched video metadata,
// pinning the exact JSON shape the response must take.
func analysisPrompt(video *domain.VideoData) string {
	return fmt.Sprintf(`You are a YouTube content analysis expert. Analyze this video data and provide detailed insights:

    Title: %s
    Description: %s
    Tags: %s
    Views: %s
    Likes: %s
    Comments: %s

    Provide analysis in this exact JSON format:
    {
      "summary": {
        "strengths": ["strength1", "strength2", ...],
        "weaknesses": ["weakness1", "weakness2", ...],
        "score": number (0-100)
      },
      "seo": {
        "titleSuggestions": ["better title 1", "better title 2", ...],
        "descriptionSuggestions": ["suggestion1", "suggestion2", ...],
        "tagsToRemove": ["tag1", "tag2", ...],
        "tagsToAdd": ["tag1", "tag2", ...],
        "keywordDensity": [{"keyword": "word", "count": number, "density": number}, ...]
      },
      "engagement": {
        "rating": "poor" | "fair" | "good" | "excellent",
        "viewsPerDay": number,
        "engagementRate": number,
        "suggestions": ["suggestion1", "suggestion2", ...]
      },
      "content": {
        "topics": ["topic1", "topic2", ...],
        "sentiment": "negative" | "neutral" | "positive",
        "suggestions": ["suggestion1", "suggestion2", ...]
      }
    }`,
		video.Title,
		video.Description,
		strings.Join(video.Tags, ", "),
		video.ViewCount,
		video.LikeCount,
		video.CommentCount,
	)
}
