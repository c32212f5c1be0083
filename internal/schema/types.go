package schema

// Bounds enforced by Validate. The jsonschema tags on the types below carry
// the same numbers for backends that accept a schema.
const (
	YouTubeTitleMin       = 10
	YouTubeTitleMax       = 70
	YouTubeDescriptionMin = 50
	YouTubeTagsMin        = 5
	YouTubeTagsMax        = 25
	ChapterTitleMin       = 3

	XPostMax        = 280
	XThreadMax      = 3
	BlueskyPostMax  = 300
	LinkedInPostMin = 50
	LinkedInTagsMax = 10
	RedditTitleMin  = 10
	RedditTitleMax  = 180
	RedditBodyMin   = 50

	BlogTitleMin   = 10
	BlogTitleMax   = 120
	BlogContentMin = 200
)

// Output is the validated result of one generation call.
type Output struct {
	YouTube YouTube `json:"youtube"`
	Socials Socials `json:"socials"`
	Blog    *Blog   `json:"blog,omitempty"`
}

type YouTube struct {
	Title       string    `json:"title" jsonschema:"minLength=10,maxLength=70"`
	Description string    `json:"description" jsonschema:"minLength=50"`
	Tags        []string  `json:"tags" jsonschema:"minItems=5,maxItems=25"`
	Chapters    []Chapter `json:"chapters,omitempty"`
}

// Chapter start times are requested as MM:SS or HH:MM:SS but only checked
// when strict chapter validation is enabled.
type Chapter struct {
	Start string `json:"start" jsonschema_description:"Timestamp in MM:SS or HH:MM:SS form"`
	Title string `json:"title" jsonschema:"minLength=3"`
}

type Socials struct {
	X        XPost        `json:"x"`
	Bluesky  BlueskyPost  `json:"bluesky"`
	LinkedIn LinkedInPost `json:"linkedin"`
	Reddit   RedditPost   `json:"reddit"`
}

type XPost struct {
	Main   string   `json:"main" jsonschema:"maxLength=280"`
	Thread []string `json:"thread,omitempty" jsonschema:"maxItems=3"`
}

type BlueskyPost struct {
	Post string `json:"post" jsonschema:"maxLength=300"`
}

type LinkedInPost struct {
	Post     string   `json:"post" jsonschema:"minLength=50"`
	Hashtags []string `json:"hashtags,omitempty" jsonschema:"maxItems=10"`
}

type RedditPost struct {
	Title string `json:"title" jsonschema:"minLength=10,maxLength=180"`
	Body  string `json:"body" jsonschema:"minLength=50"`
}

type Blog struct {
	Title   string `json:"title" jsonschema:"minLength=10,maxLength=120"`
	Content string `json:"content" jsonschema:"minLength=200"`
}
