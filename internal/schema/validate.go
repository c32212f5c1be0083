package schema

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Options adjusts validation for a pipeline profile.
type Options struct {
	// RequireBlog makes the blog object mandatory. When false a blog in the
	// candidate is ignored.
	RequireBlog bool
	// StrictChapters rejects malformed or decreasing chapter timestamps.
	StrictChapters bool
}

// Issue is one violated constraint, addressed by a dotted field path such as
// "socials.x.thread[2]".
type Issue struct {
	Path       string
	Constraint string
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Constraint
	}
	return i.Path + ": " + i.Constraint
}

// ValidationError lists every constraint a candidate violated.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}
	return "schema validation failed: " + strings.Join(parts, "; ")
}

// Validate checks a decoded JSON value (as produced by encoding/json into an
// interface{}) and converts it to an Output. Unknown fields are ignored. A
// null optional field counts as absent. Lengths are counted in runes and all
// bounds are inclusive.
func Validate(candidate any, opts Options) (*Output, error) {
	v := &validator{opts: opts}
	out := &Output{}

	if root := v.object(candidate, ""); root != nil {
		if yt := v.requiredObject(root, "", "youtube"); yt != nil {
			out.YouTube = v.youtube(yt, "youtube")
		}
		if so := v.requiredObject(root, "", "socials"); so != nil {
			out.Socials = v.socials(so, "socials")
		}
		if opts.RequireBlog {
			if bl := v.requiredObject(root, "", "blog"); bl != nil {
				out.Blog = v.blog(bl, "blog")
			}
		}
	}

	if len(v.issues) > 0 {
		return nil, &ValidationError{Issues: v.issues}
	}
	return out, nil
}

type bounds struct {
	min, max int // max 0 means unbounded
}

type validator struct {
	opts   Options
	issues []Issue
}

func (v *validator) fail(path, format string, args ...any) {
	v.issues = append(v.issues, Issue{Path: path, Constraint: fmt.Sprintf(format, args...)})
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func (v *validator) object(val any, path string) map[string]any {
	obj, ok := val.(map[string]any)
	if !ok {
		v.fail(path, "expected object, got %s", typeName(val))
		return nil
	}
	return obj
}

// lookup returns the value at key; null is reported as absent.
func lookup(obj map[string]any, key string) (any, bool) {
	val, ok := obj[key]
	if !ok || val == nil {
		return nil, false
	}
	return val, true
}

func (v *validator) requiredObject(obj map[string]any, path, key string) map[string]any {
	p := join(path, key)
	val, ok := lookup(obj, key)
	if !ok {
		v.fail(p, "required")
		return nil
	}
	return v.object(val, p)
}

func (v *validator) checkString(val any, path string, b bounds) (string, bool) {
	s, ok := val.(string)
	if !ok {
		v.fail(path, "expected string, got %s", typeName(val))
		return "", false
	}
	n := utf8.RuneCountInString(s)
	if n < b.min {
		v.fail(path, "must be at least %d characters (got %d)", b.min, n)
		return s, false
	}
	if b.max > 0 && n > b.max {
		v.fail(path, "must be at most %d characters (got %d)", b.max, n)
		return s, false
	}
	return s, true
}

func (v *validator) str(obj map[string]any, path, key string, b bounds) string {
	p := join(path, key)
	val, ok := lookup(obj, key)
	if !ok {
		v.fail(p, "required")
		return ""
	}
	s, _ := v.checkString(val, p, b)
	return s
}

// strList validates an array of strings. size bounds the element count and
// item bounds each element.
func (v *validator) strList(obj map[string]any, path, key string, required bool, size, item bounds) []string {
	p := join(path, key)
	val, ok := lookup(obj, key)
	if !ok {
		if required {
			v.fail(p, "required")
		}
		return nil
	}
	arr, ok := val.([]any)
	if !ok {
		v.fail(p, "expected array, got %s", typeName(val))
		return nil
	}
	if len(arr) < size.min {
		v.fail(p, "must contain at least %d items (got %d)", size.min, len(arr))
	}
	if size.max > 0 && len(arr) > size.max {
		v.fail(p, "must contain at most %d items (got %d)", size.max, len(arr))
	}

	out := make([]string, 0, len(arr))
	for i, el := range arr {
		s, _ := v.checkString(el, fmt.Sprintf("%s[%d]", p, i), item)
		out = append(out, s)
	}
	return out
}

func (v *validator) youtube(obj map[string]any, path string) YouTube {
	yt := YouTube{
		Title:       v.str(obj, path, "title", bounds{YouTubeTitleMin, YouTubeTitleMax}),
		Description: v.str(obj, path, "description", bounds{YouTubeDescriptionMin, 0}),
		Tags:        v.strList(obj, path, "tags", true, bounds{YouTubeTagsMin, YouTubeTagsMax}, bounds{}),
	}

	val, ok := lookup(obj, "chapters")
	if !ok {
		return yt
	}
	p := join(path, "chapters")
	arr, ok := val.([]any)
	if !ok {
		v.fail(p, "expected array, got %s", typeName(val))
		return yt
	}
	for i, el := range arr {
		cp := fmt.Sprintf("%s[%d]", p, i)
		ch := v.object(el, cp)
		if ch == nil {
			continue
		}
		yt.Chapters = append(yt.Chapters, Chapter{
			Start: v.str(ch, cp, "start", bounds{}),
			Title: v.str(ch, cp, "title", bounds{ChapterTitleMin, 0}),
		})
	}

	if v.opts.StrictChapters {
		v.chapterTimeline(yt.Chapters, p)
	}
	return yt
}

var chapterStart = regexp.MustCompile(`^(?:(\d{1,2}):)?(\d{1,3}):(\d{2})$`)

// chapterTimeline checks that every start parses as MM:SS or HH:MM:SS and
// that starts never go backwards.
func (v *validator) chapterTimeline(chapters []Chapter, path string) {
	prev := -1
	for i, ch := range chapters {
		p := fmt.Sprintf("%s[%d].start", path, i)
		secs, ok := parseTimestamp(ch.Start)
		if !ok {
			v.fail(p, "must be MM:SS or HH:MM:SS (got %q)", ch.Start)
			continue
		}
		if secs < prev {
			v.fail(p, "must not be earlier than the previous chapter (got %q)", ch.Start)
		}
		prev = secs
	}
}

func parseTimestamp(s string) (int, bool) {
	m := chapterStart.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	hours := 0
	if m[1] != "" {
		hours, _ = strconv.Atoi(m[1])
		if len(m[2]) > 2 {
			return 0, false
		}
	}
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])
	if seconds > 59 || (m[1] != "" && minutes > 59) {
		return 0, false
	}
	return hours*3600 + minutes*60 + seconds, true
}

func (v *validator) socials(obj map[string]any, path string) Socials {
	var s Socials

	if x := v.requiredObject(obj, path, "x"); x != nil {
		p := join(path, "x")
		s.X = XPost{
			Main:   v.str(x, p, "main", bounds{0, XPostMax}),
			Thread: v.strList(x, p, "thread", false, bounds{0, XThreadMax}, bounds{0, XPostMax}),
		}
	}
	if bs := v.requiredObject(obj, path, "bluesky"); bs != nil {
		s.Bluesky = BlueskyPost{
			Post: v.str(bs, join(path, "bluesky"), "post", bounds{0, BlueskyPostMax}),
		}
	}
	if li := v.requiredObject(obj, path, "linkedin"); li != nil {
		p := join(path, "linkedin")
		s.LinkedIn = LinkedInPost{
			Post:     v.str(li, p, "post", bounds{LinkedInPostMin, 0}),
			Hashtags: v.strList(li, p, "hashtags", false, bounds{0, LinkedInTagsMax}, bounds{}),
		}
	}
	if rd := v.requiredObject(obj, path, "reddit"); rd != nil {
		p := join(path, "reddit")
		s.Reddit = RedditPost{
			Title: v.str(rd, p, "title", bounds{RedditTitleMin, RedditTitleMax}),
			Body:  v.str(rd, p, "body", bounds{RedditBodyMin, 0}),
		}
	}
	return s
}

func (v *validator) blog(obj map[string]any, path string) *Blog {
	return &Blog{
		Title:   v.str(obj, path, "title", bounds{BlogTitleMin, BlogTitleMax}),
		Content: v.str(obj, path, "content", bounds{BlogContentMin, 0}),
	}
}

func typeName(val any) string {
	switch val.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", val)
	}
}
