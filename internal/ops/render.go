package ops

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/hpungsan/wodgen/internal/errors"
	"github.com/hpungsan/wodgen/internal/library"
	"github.com/hpungsan/wodgen/internal/workout"
)

// RenderFormat selects the output of Render.
type RenderFormat string

const (
	RenderMarkdown RenderFormat = "markdown" // default
	RenderHTML     RenderFormat = "html"
)

// RenderInput contains parameters for the Render operation.
type RenderInput struct {
	Path   string       // required: a workout file
	Format RenderFormat // default: RenderMarkdown
}

// RenderOutput contains the result of the Render operation.
type RenderOutput struct {
	Path    string       `json:"path"`
	Format  RenderFormat `json:"format"`
	Content string       `json:"content"`
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// Render turns a saved workout file into a printable sheet.
func Render(input RenderInput) (*RenderOutput, error) {
	if strings.TrimSpace(input.Path) == "" {
		return nil, errors.NewInvalidRequest("path is required")
	}
	if input.Format == "" {
		input.Format = RenderMarkdown
	}
	if input.Format != RenderMarkdown && input.Format != RenderHTML {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("format must be %q or %q", RenderMarkdown, RenderHTML))
	}

	rows, err := library.LoadWorkout(input.Path)
	if err != nil {
		return nil, err
	}

	title := "Workout " + strings.TrimSuffix(filepath.Base(input.Path), filepath.Ext(input.Path))
	md := WorkoutMarkdown(title, rows)

	out := &RenderOutput{Path: input.Path, Format: input.Format, Content: md}
	if input.Format == RenderHTML {
		html, err := markdownToHTML(title, md)
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		out.Content = html
	}
	return out, nil
}

// WorkoutMarkdown renders rows as a GitHub-flavored markdown table.
func WorkoutMarkdown(title string, rows []workout.Row) string {
	var b strings.Builder
	b.WriteString("# " + title + "\n\n")
	b.WriteString("| Group | Exercise | Sets | Distance | Time | Reps | Goal | Video |\n")
	b.WriteString("|---|---|---|---|---|---|---|---|\n")
	for _, r := range rows {
		video := ""
		if r.Video != "" {
			video = "[video](" + r.Video + ")"
		}
		cells := []string{
			strconv.Itoa(r.Group), r.Name, r.Sets, r.Distance, r.Time, r.Reps, r.Goal, video,
		}
		for i, c := range cells {
			cells[i] = escapeCell(c)
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	return b.String()
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

func markdownToHTML(title, md string) (string, error) {
	var body bytes.Buffer
	gm := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := gm.Convert([]byte(md), &body); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}

	var page bytes.Buffer
	err := pageTemplate.Execute(&page, struct {
		Title string
		Body  template.HTML
	}{title, template.HTML(body.String())})
	if err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}
	return page.String(), nil
}
