// Package markdown renders the blog's markdown dialect to HTML, exposed as
// a templ component. The dialect covers headings, lists, ordered lists,
// blockquotes, fenced code with a language badge, tables, and inline
// bold/italic/code/links/images. URLs pass through a scheme whitelist so
// content can never inject javascript: links.
package markdown

import (
	"bytes"
	"context"
	"html"
	"io"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

var (
	reBold             = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBoldUnderscore   = regexp.MustCompile(`__(.+?)__`)
	reItalic           = regexp.MustCompile(`\*([^*]+)\*`)
	reItalicUnderscore = regexp.MustCompile(`_([^_]+)_`)
	reInlineCode       = regexp.MustCompile("`([^`]+)`")
	reLink             = regexp.MustCompile(`\[(.*?)\]\((.*?)\)(\^)?`)
	reOrderedItem      = regexp.MustCompile(`^(\d+)\.\s`)
	// ![alt](url){style} or ![alt](url){style|width|height}
	reImg = regexp.MustCompile(`\!\[(.*?)\]\((.*?)\)\{([^|}]*?)(?:\|(\d+)\|(\d+))?\}`)
)

// Markdown returns a templ.Component that renders md as HTML.
func Markdown(md string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, Render(md))
		return err
	})
}

// Render returns the HTML representation of md.
func Render(md string) string {
	r := &renderer{}
	return r.render(md)
}

// Inline applies inline formatting (bold, italic, code, links, images) to a
// single line and returns the escaped HTML.
func Inline(s string) string {
	r := &renderer{}
	return r.inline(s)
}

// renderer holds the block state for one document pass. Blocks are tracked
// as open/closed flags; each line either extends the open block or closes
// it and starts another.
type renderer struct {
	buf        bytes.Buffer
	imageCount int

	inPara    bool
	inList    bool
	inOrdered bool
	inQuote   bool
	inTable   bool
	tableBody bool
	inCode    bool
	codeLang  bool // current code block carries a language badge
}

func (r *renderer) render(md string) string {
	for _, raw := range strings.Split(md, "\n") {
		r.line(strings.TrimRight(raw, "\r"))
	}
	r.endText()
	r.endCode()
	return r.buf.String()
}

func (r *renderer) line(line string) {
	if strings.HasPrefix(line, "```") {
		if r.inCode {
			r.endCode()
			return
		}
		r.endPara()
		r.endList()
		r.endOrdered()
		r.endQuote()
		r.openCode(strings.TrimSpace(line[3:]))
		return
	}

	if r.inCode {
		r.buf.WriteString(html.EscapeString(line))
		r.buf.WriteString("\n")
		return
	}

	if strings.TrimSpace(line) == "" {
		r.endText()
		return
	}

	switch {
	case strings.HasPrefix(line, "---"):
		r.endText()
		r.buf.WriteString("<hr/>")
	case strings.HasPrefix(line, "# "):
		r.heading("h1", line[2:])
	case strings.HasPrefix(line, "## "):
		r.heading("h2", line[3:])
	case strings.HasPrefix(line, "### "):
		r.heading("h3", line[4:])
	case strings.HasPrefix(line, "|"):
		r.tableRow(line)
	case strings.HasPrefix(line, "- "):
		if !r.inList {
			r.endPara()
			r.endOrdered()
			r.endQuote()
			r.endTable()
			r.buf.WriteString("<ul>")
			r.inList = true
		}
		r.buf.WriteString("<li>" + r.inline(strings.TrimSpace(line[2:])) + "</li>")
	case reOrderedItem.MatchString(line):
		if !r.inOrdered {
			r.endPara()
			r.endList()
			r.endQuote()
			r.endTable()
			r.buf.WriteString("<ol>")
			r.inOrdered = true
		}
		item := reOrderedItem.ReplaceAllString(line, "")
		r.buf.WriteString("<li>" + r.inline(strings.TrimSpace(item)) + "</li>")
	case strings.HasPrefix(line, "> "):
		if !r.inQuote {
			r.endPara()
			r.endList()
			r.endOrdered()
			r.endTable()
			r.buf.WriteString("<blockquote>")
			r.inQuote = true
		}
		r.buf.WriteString(r.inline(strings.TrimSpace(line[2:])))
	default:
		if !r.inPara {
			r.endList()
			r.endOrdered()
			r.endQuote()
			r.endTable()
			r.buf.WriteString("<p>")
			r.inPara = true
		} else {
			r.buf.WriteString(" ")
		}
		r.buf.WriteString(r.inline(strings.TrimSpace(line)) + "\n")
	}
}

func (r *renderer) heading(tag, rest string) {
	r.endText()
	r.buf.WriteString("<" + tag + ">" + r.inline(strings.TrimSpace(rest)) + "</" + tag + ">")
}

func (r *renderer) tableRow(line string) {
	if !r.inTable {
		r.endPara()
		r.endList()
		r.endOrdered()
		r.endQuote()
		r.buf.WriteString("<table>")
		r.inTable = true
		// First row is the header.
		r.buf.WriteString("<thead><tr>")
		for _, cell := range tableCells(line) {
			r.buf.WriteString("<th>" + r.inline(cell) + "</th>")
		}
		r.buf.WriteString("</tr></thead>")
		return
	}
	if isTableSeparator(line) {
		// Separator row like |---|---| just opens the body.
		if !r.tableBody {
			r.buf.WriteString("<tbody>")
			r.tableBody = true
		}
		return
	}
	if !r.tableBody {
		r.buf.WriteString("<tbody>")
		r.tableBody = true
	}
	r.buf.WriteString("<tr>")
	for _, cell := range tableCells(line) {
		r.buf.WriteString("<td>" + r.inline(cell) + "</td>")
	}
	r.buf.WriteString("</tr>")
}

func (r *renderer) openCode(lang string) {
	if lang != "" {
		r.codeLang = true
		escaped := html.EscapeString(lang)
		r.buf.WriteString("<div class=\"code-block-wrapper\"><span class=\"code-lang code-lang-" + escaped + "\">" + escaped + "</span>")
		r.buf.WriteString("<pre class=\"code-block\"><code class=\"language-" + escaped + "\">")
	} else {
		r.buf.WriteString("<pre class=\"code-block\"><code>")
	}
	r.inCode = true
}

// endText closes every open text block (everything except fenced code).
func (r *renderer) endText() {
	r.endPara()
	r.endList()
	r.endOrdered()
	r.endQuote()
	r.endTable()
}

func (r *renderer) endPara() {
	if r.inPara {
		r.buf.WriteString("</p>")
		r.inPara = false
	}
}

func (r *renderer) endList() {
	if r.inList {
		r.buf.WriteString("</ul>")
		r.inList = false
	}
}

func (r *renderer) endOrdered() {
	if r.inOrdered {
		r.buf.WriteString("</ol>")
		r.inOrdered = false
	}
}

func (r *renderer) endQuote() {
	if r.inQuote {
		r.buf.WriteString("</blockquote>")
		r.inQuote = false
	}
}

func (r *renderer) endTable() {
	if r.inTable {
		if r.tableBody {
			r.buf.WriteString("</tbody>")
		}
		r.buf.WriteString("</table>")
		r.inTable = false
		r.tableBody = false
	}
}

func (r *renderer) endCode() {
	if r.inCode {
		r.buf.WriteString("</code></pre>")
		if r.codeLang {
			r.buf.WriteString("</div>")
			r.codeLang = false
		}
		r.inCode = false
	}
}

func tableCells(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.Trim(line, "|")
	parts := strings.Split(line, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func isTableSeparator(line string) bool {
	line = strings.TrimSpace(line)
	line = strings.Trim(line, "|")
	for _, cell := range strings.Split(line, "|") {
		cell = strings.TrimSpace(cell)
		cleaned := strings.ReplaceAll(strings.ReplaceAll(cell, "-", ""), ":", "")
		if cleaned != "" {
			return false
		}
	}
	return true
}

// applyOutsideTags applies fn only to text segments outside HTML tags, so
// formatting regexes never touch URLs inside href attributes.
func applyOutsideTags(s string, fn func(string) string) string {
	var buf strings.Builder
	for len(s) > 0 {
		lt := strings.Index(s, "<")
		if lt < 0 {
			buf.WriteString(fn(s))
			break
		}
		if lt > 0 {
			buf.WriteString(fn(s[:lt]))
		}
		gt := strings.Index(s[lt:], ">")
		if gt < 0 {
			buf.WriteString(s[lt:])
			break
		}
		buf.WriteString(s[lt : lt+gt+1])
		s = s[lt+gt+1:]
	}
	return buf.String()
}

func (r *renderer) inline(s string) string {
	escaped := html.EscapeString(s)
	// ![alt](url){style} or ![alt](url){style|width|height}
	escaped = reImg.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reImg.FindStringSubmatch(m)
		if len(match) < 4 {
			return m
		}
		src := SafeURL(match[2])
		if src == "" {
			return match[1]
		}

		alt := match[1]
		style := match[3]
		width := "1024"
		height := "768"
		if len(match) >= 6 && match[4] != "" && match[5] != "" {
			width = match[4]
			height = match[5]
		}

		r.imageCount++
		var loadAttr string
		if r.imageCount == 1 {
			loadAttr = `fetchpriority="high"`
		} else {
			loadAttr = `loading="eager"`
		}

		return `<img ` + loadAttr + ` width="` + width + `" height="` + height + `" alt="` + alt + `" src="` + src + `" style="` + style + `" decoding="async"/>`
	})
	escaped = reLink.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reLink.FindStringSubmatch(m)
		if len(match) < 3 {
			return m
		}
		href := SafeURL(match[2])
		if href == "" {
			return match[1]
		}
		attrs := `class="post-link"`
		if len(match) >= 4 && match[3] == "^" {
			attrs += ` target="_blank" rel="noopener noreferrer"`
		}
		return `<a href="` + href + `" ` + attrs + `>` + match[1] + `</a>`
	})
	// Inline code is swapped for placeholders first so the bold/italic
	// regexes cannot format anything between backticks.
	var inlineCode []string
	escaped = reInlineCode.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reInlineCode.FindStringSubmatch(m)
		placeholder := "\x00IC" + strconv.Itoa(len(inlineCode)) + "\x00"
		inlineCode = append(inlineCode, "<code>"+match[1]+"</code>")
		return placeholder
	})
	escaped = applyOutsideTags(escaped, func(seg string) string {
		seg = reBold.ReplaceAllString(seg, "<strong>$1</strong>")
		seg = reBoldUnderscore.ReplaceAllString(seg, "<strong>$1</strong>")
		seg = reItalic.ReplaceAllString(seg, "<em>$1</em>")
		seg = reItalicUnderscore.ReplaceAllString(seg, "<em>$1</em>")
		return seg
	})
	for i, code := range inlineCode {
		escaped = strings.Replace(escaped, "\x00IC"+strconv.Itoa(i)+"\x00", code, 1)
	}
	return escaped
}

// SafeURL validates and sanitizes a URL for use in HTML attributes.
func SafeURL(raw string) string {
	val := strings.TrimSpace(html.UnescapeString(raw))
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return html.EscapeString(val)
	default:
		return ""
	}
}
