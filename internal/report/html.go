package report

import (
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const reportCSS = `body{font-family:-apple-system,"Segoe UI",Helvetica,Arial,sans-serif;color:#0f172a;background:#fff;margin:0;padding:1.5rem;line-height:1.5;}
.report{max-width:860px;margin:0 auto;}
h1{color:#0a1f3b;border-bottom:3px solid #3b82f6;padding-bottom:0.4rem;}
h2{color:#0a1f3b;margin-top:1.8rem;}
h3{color:#1e3a8a;margin-top:1.2rem;}
table{width:100%;border-collapse:collapse;font-size:0.9rem;}
th,td{border:1px solid #cbd5e1;padding:0.35rem 0.5rem;text-align:left;vertical-align:top;}
thead th{background:#f1f5f9;}
hr{border:0;border-top:1px solid #e2e8f0;margin-top:2rem;}
html,body,*{-webkit-print-color-adjust:exact !important;print-color-adjust:exact !important;}
@media print{@page{size:A4;margin:12mm;}body{padding:0;}}`

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTML converts a markdown report into a standalone HTML page.
func HTML(markdown, title string) (string, error) {
	var content strings.Builder
	if err := md.Convert([]byte(markdown), &content); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}

	return "<!doctype html><html><head><meta charset='utf-8'>" +
		"<title>" + html.EscapeString(title) + "</title>" +
		"<style>" + reportCSS + "</style></head><body>" +
		"<div class='report'>" + content.String() + "</div>" +
		"</body></html>", nil
}
