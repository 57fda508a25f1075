package views

import (
	"bytes"
	"context"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/stanza/markdown"
)

// Layout wraps a body component with the full HTML document: head metadata,
// OpenGraph tags, JSON-LD, header, and footer.
func Layout(site Site, meta PageMeta, jsonLD string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString("<!DOCTYPE html><html lang=\"en\"><head>")
		buf.WriteString("<meta charset=\"utf-8\"/>")
		buf.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>")
		buf.WriteString("<title>" + html.EscapeString(meta.Title) + "</title>")
		if meta.Description != "" {
			buf.WriteString("<meta name=\"description\" content=\"" + html.EscapeString(meta.Description) + "\"/>")
		}
		buf.WriteString("<link rel=\"canonical\" href=\"" + html.EscapeString(meta.URL) + "\"/>")
		buf.WriteString("<link rel=\"alternate\" type=\"application/rss+xml\" title=\"" + html.EscapeString(site.Name) + "\" href=\"/feed.xml\"/>")
		buf.WriteString("<link rel=\"stylesheet\" href=\"/public/style.css\"/>")
		buf.WriteString("<meta property=\"og:title\" content=\"" + html.EscapeString(meta.Title) + "\"/>")
		if meta.Description != "" {
			buf.WriteString("<meta property=\"og:description\" content=\"" + html.EscapeString(meta.Description) + "\"/>")
		}
		buf.WriteString("<meta property=\"og:url\" content=\"" + html.EscapeString(meta.URL) + "\"/>")
		buf.WriteString("<meta property=\"og:type\" content=\"" + html.EscapeString(meta.OGType) + "\"/>")
		buf.WriteString("<meta property=\"og:site_name\" content=\"" + html.EscapeString(site.Name) + "\"/>")
		if jsonLD != "" {
			buf.WriteString("<script type=\"application/ld+json\">" + jsonLD + "</script>")
		}
		buf.WriteString("</head><body>")
		buf.WriteString("<header class=\"site-header\"><a href=\"/\" class=\"site-title\">" + html.EscapeString(site.Name) + "</a></header>")
		buf.WriteString("<main>")
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		footer := "</main><footer class=\"site-footer\">"
		if site.Author != "" {
			footer += "<span>" + html.EscapeString(site.Author) + "</span>"
		}
		footer += "<a href=\"/feed.xml\">RSS</a></footer></body></html>"
		_, err := io.WriteString(w, footer)
		return err
	})
}

// Home renders the post listing page. When activeTag is non-empty the list
// is already filtered to that tag and the tag pill renders highlighted.
func Home(site Site, posts []Post, activeTag string, tags []string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString("<section class=\"tags\">")
		writeTagPill(&buf, "all", "/", activeTag == "")
		for _, t := range tags {
			writeTagPill(&buf, t, "/tags/"+t+"/", t == activeTag)
		}
		buf.WriteString("</section>")
		buf.WriteString("<section class=\"posts\">")
		for _, p := range posts {
			buf.WriteString("<article class=\"post-card\">")
			buf.WriteString("<a href=\"" + html.EscapeString(p.Link) + "/\"><h2>" + html.EscapeString(p.Title) + "</h2></a>")
			buf.WriteString("<time datetime=\"" + html.EscapeString(p.Date) + "\">" + html.EscapeString(p.Date) + "</time>")
			buf.WriteString("<p>" + html.EscapeString(p.Description) + "</p>")
			buf.WriteString("</article>")
		}
		buf.WriteString("</section>")
		_, err := w.Write(buf.Bytes())
		return err
	})
	meta := PageMeta{
		Title:       site.Name,
		Description: site.Description,
		URL:         buildURL(site.URL),
		OGType:      "website",
	}
	if activeTag != "" {
		meta.Title = site.Name + ": " + activeTag
		meta.URL = buildURL(site.URL, "tags", activeTag)
	}
	return Layout(site, meta, WebsiteJsonLD(site), body)
}

// PostPage renders a single article with its markdown body and related posts.
func PostPage(site Site, post Post, related []Post) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString("<article class=\"post\">")
		buf.WriteString("<h1>" + html.EscapeString(post.Title) + "</h1>")
		buf.WriteString("<time datetime=\"" + html.EscapeString(post.Date) + "\">" + html.EscapeString(post.Date) + "</time>")
		buf.WriteString("<section class=\"tags\">")
		for _, t := range post.Tags {
			writeTagPill(&buf, t, "/tags/"+t+"/", false)
		}
		buf.WriteString("</section>")
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
		if err := markdown.Markdown(post.Content).Render(ctx, w); err != nil {
			return err
		}
		buf.Reset()
		buf.WriteString("</article>")
		if len(related) > 0 {
			buf.WriteString("<aside class=\"related\"><h3>Related</h3><ul>")
			for _, r := range related {
				buf.WriteString("<li><a href=\"" + html.EscapeString(r.Link) + "/\">" + html.EscapeString(r.Title) + "</a></li>")
			}
			buf.WriteString("</ul></aside>")
		}
		_, err := w.Write(buf.Bytes())
		return err
	})
	meta := PageMeta{
		Title:       post.Title + " | " + site.Name,
		Description: post.Description,
		URL:         buildURL(site.URL, "blog", post.Slug),
		OGType:      "article",
	}
	return Layout(site, meta, BlogPostingJsonLD(site, post), body)
}

func writeTagPill(buf *bytes.Buffer, label, href string, active bool) {
	class := "tag-pill"
	if active {
		class += " tag-pill-active"
	}
	buf.WriteString("<a class=\"" + class + "\" href=\"" + html.EscapeString(href) + "\">" + html.EscapeString(label) + "</a>")
}
