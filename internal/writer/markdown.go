package writer

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/vidkit/internal/schema"
)

func hashtags(tags []string) string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = "#" + t
	}
	return strings.Join(out, " ")
}

func renderYouTube(yt schema.YouTube) string {
	var b strings.Builder

	b.WriteString("# YouTube\n\n")
	fmt.Fprintf(&b, "**Title**\n\n%s\n\n", yt.Title)
	fmt.Fprintf(&b, "**Description**\n\n%s\n\n", yt.Description)
	fmt.Fprintf(&b, "**Tags**\n\n%s\n\n", hashtags(yt.Tags))

	if len(yt.Chapters) > 0 {
		b.WriteString("**Chapters**\n\n")
		lines := make([]string, len(yt.Chapters))
		for i, c := range yt.Chapters {
			lines[i] = fmt.Sprintf("- %s — %s", c.Start, c.Title)
		}
		b.WriteString(strings.Join(lines, "\n"))
		b.WriteString("\n")
	}

	return b.String()
}

// renderSocials emits one section per platform, always X, Bluesky, LinkedIn,
// Reddit.
func renderSocials(s schema.Socials) string {
	var b strings.Builder

	b.WriteString("# Social Copy\n\n")

	fmt.Fprintf(&b, "## X (Tweet)\n%s\n", s.X.Main)
	if len(s.X.Thread) > 0 {
		b.WriteString("\n**Thread**\n")
		lines := make([]string, len(s.X.Thread))
		for i, t := range s.X.Thread {
			lines[i] = fmt.Sprintf("%d. %s", i+1, t)
		}
		b.WriteString(strings.Join(lines, "\n"))
	}

	fmt.Fprintf(&b, "\n\n## Bluesky\n%s\n\n", s.Bluesky.Post)

	fmt.Fprintf(&b, "## LinkedIn\n%s\n\n", s.LinkedIn.Post)
	if len(s.LinkedIn.Hashtags) > 0 {
		b.WriteString(hashtags(s.LinkedIn.Hashtags) + "\n\n")
	}

	fmt.Fprintf(&b, "## Reddit\n**Title:** %s\n\n%s\n", s.Reddit.Title, s.Reddit.Body)

	return b.String()
}
