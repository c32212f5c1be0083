package writer

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
)

type runStyle struct {
	font string
	size uint64
	bold bool
}

var (
	bodyStyle  = runStyle{font: "Times New Roman", size: 13}
	codeStyle  = runStyle{font: "Courier New", size: 11}
	titleStyle = runStyle{font: "Times New Roman", size: 16, bold: true}
)

type span struct {
	text  string
	style runStyle
}

// paragraph is one docx paragraph; an empty one renders as a blank line.
type paragraph []span

var (
	reHeading  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet   = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	reSrtTime  = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}`)
	reSrtIndex = regexp.MustCompile(`^\d+$`)
)

func markdownToDocx(title, markdown, outputPath string) error {
	return saveDocx(blogParagraphs(title, markdown), outputPath)
}

func srtToDocx(title, srtContent, outputPath string) error {
	return saveDocx(transcriptParagraphs(title, srtContent), outputPath)
}

func saveDocx(paras []paragraph, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}
	for _, para := range paras {
		p := doc.AddParagraph("")
		for _, s := range para {
			run := p.AddText(s.text).Font(s.style.font).Size(s.style.size).Color("000000")
			if s.style.bold {
				run.Bold(true)
			}
		}
	}
	return doc.SaveTo(outputPath)
}

// blogParagraphs maps blog markdown to paragraphs: headings become bold
// runs sized by level, fenced code stays line by line in a monospace font,
// and **bold** spans survive inside body text.
func blogParagraphs(title, markdown string) []paragraph {
	paras := []paragraph{{{text: title, style: titleStyle}}}

	inCode := false
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "```"):
			inCode = !inCode
		case inCode:
			paras = append(paras, paragraph{{text: line, style: codeStyle}})
		case trimmed == "" || trimmed == "---":
		default:
			if m := reHeading.FindStringSubmatch(trimmed); m != nil {
				style := titleStyle
				style.size = headingSize(len(m[1]))
				paras = append(paras, paragraph{{text: stripInline(m[2]), style: style}})
			} else if m := reBullet.FindStringSubmatch(trimmed); m != nil {
				paras = append(paras, inlineSpans("• "+m[1]))
			} else {
				paras = append(paras, inlineSpans(trimmed))
			}
		}
	}
	return paras
}

// transcriptParagraphs keeps one paragraph per caption line. Cue numbers,
// timings and repeated lines are dropped.
func transcriptParagraphs(title, srt string) []paragraph {
	paras := []paragraph{{{text: title, style: titleStyle}}, {}}

	seen := make(map[string]bool)
	for _, line := range strings.Split(srt, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || reSrtIndex.MatchString(trimmed) || reSrtTime.MatchString(trimmed) || seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		paras = append(paras, paragraph{{text: trimmed, style: bodyStyle}})
	}
	return paras
}

func headingSize(level int) uint64 {
	if level >= 4 {
		return bodyStyle.size
	}
	return 17 - uint64(level)
}

func inlineSpans(text string) paragraph {
	var para paragraph
	last := 0
	for _, m := range reBold.FindAllStringSubmatchIndex(text, -1) {
		if plain := stripInline(text[last:m[0]]); plain != "" {
			para = append(para, span{text: plain, style: bodyStyle})
		}
		bold := bodyStyle
		bold.bold = true
		para = append(para, span{text: stripInline(text[m[2]:m[3]]), style: bold})
		last = m[1]
	}
	if plain := stripInline(text[last:]); plain != "" {
		para = append(para, span{text: plain, style: bodyStyle})
	}
	return para
}

func stripInline(s string) string {
	return strings.NewReplacer("**", "", "__", "", "`", "").Replace(s)
}
