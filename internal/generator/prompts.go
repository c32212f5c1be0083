package generator

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/vidkit/internal/config"
	"github.com/nguyentantai21042004/vidkit/internal/schema"
)

const basePrompt = `You are a YouTube strategist and social media copywriter. The videos are coding tutorials or technical explainers.

Only use information found in the transcript. Work out what the video covers from the transcript before making any assumption, and never invent details that are not there.

Social copy should be engaging and clickable: summarize what the transcript actually says, go beyond one or two sentences, and use emojis, bullet lists and relevant hashtags where they fit.

YouTube:
- Title: catchy and engaging, %d-%d characters.
- Description: at least %d characters, summarizes the video, includes relevant keywords and ends with a call to action.
- Tags: %d-%d single words or short phrases, without '#' and without spaces.
- Chapters: 3-10 chapters covering the main sections when the transcript allows it. Each start is a timestamp in MM:SS (or HH:MM:SS for long videos), starting at 00:00 and increasing. Chapter titles describe the section and have at least %d characters.

Social copy:
- X: a main post of at most %d characters and up to %d follow-up posts for a thread, each at most %d characters.
- Bluesky: one post of at most %d characters.
- LinkedIn: a post of at least %d characters and up to %d hashtags.
- Reddit: a title of %d-%d characters and a body of at least %d characters suitable for a relevant subreddit.
`

const blogPrompt = `
Blog post:
- Title: %d-%d characters.
- Content: a well structured Markdown article of at least %d characters that expands on the concepts in the transcript, uses ## and ### headings, explains any code mentioned and recreates it accurately in fenced code blocks with a language tag, and ends with a conclusion.
`

const exampleYouTube = `  "youtube": {
    "title": "Your Catchy Video Title",
    "description": "A well crafted description of the video...",
    "tags": ["tag1", "tag2"],
    "chapters": [{"start": "00:00", "title": "Introduction"}, {"start": "02:15", "title": "Main Topic"}]
  },
  "socials": {
    "x": {"main": "Main post...", "thread": ["Follow-up 1...", "Follow-up 2..."]},
    "bluesky": {"post": "Bluesky post..."},
    "linkedin": {"post": "LinkedIn post...", "hashtags": ["hashtag1", "hashtag2"]},
    "reddit": {"title": "Reddit title...", "body": "Reddit body..."}
  }`

const exampleBlog = `,
  "blog": {"title": "Blog post title", "content": "## Introduction\n..."}`

// SystemPrompt builds the instruction set for a profile.
func SystemPrompt(profile config.Profile) string {
	var b strings.Builder

	fmt.Fprintf(&b, basePrompt,
		schema.YouTubeTitleMin, schema.YouTubeTitleMax,
		schema.YouTubeDescriptionMin,
		schema.YouTubeTagsMin, schema.YouTubeTagsMax,
		schema.ChapterTitleMin,
		schema.XPostMax, schema.XThreadMax, schema.XPostMax,
		schema.BlueskyPostMax,
		schema.LinkedInPostMin, schema.LinkedInTagsMax,
		schema.RedditTitleMin, schema.RedditTitleMax, schema.RedditBodyMin,
	)

	if profile.IncludeBlog {
		fmt.Fprintf(&b, blogPrompt, schema.BlogTitleMin, schema.BlogTitleMax, schema.BlogContentMin)
	}

	switch {
	case profile.Name == config.ProfileLocalized:
		fmt.Fprintf(&b, "\nWrite every piece of copy in the language with code %q, whatever the language of the transcript, using a casual and friendly tone.\n", profile.Language)
	case profile.Language != "":
		fmt.Fprintf(&b, "\nWrite every piece of copy in the language with code %q.\n", profile.Language)
	}

	keys := `"youtube" and "socials"`
	example := exampleYouTube
	if profile.IncludeBlog {
		keys = `"youtube", "socials" and "blog"`
		example += exampleBlog
	}
	fmt.Fprintf(&b, "\nReturn ONLY a JSON object with the top-level keys %s, with no text outside the JSON. Example:\n{\n%s\n}\n", keys, example)

	return b.String()
}

// UserPrompt carries the transcript verbatim.
func UserPrompt(transcript string) string {
	return "Transcript of the video:\n" + transcript
}
