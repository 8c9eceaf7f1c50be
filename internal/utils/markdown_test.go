package utils

import (
	"strings"
	"testing"
)

func TestRenderMarkdownBasics(t *testing.T) {
	got := string(RenderMarkdown("some **bold** evidence"))
	if !strings.Contains(got, "<strong>bold</strong>") {
		t.Errorf("bold not rendered: %q", got)
	}
}

func TestRenderMarkdownStripsScripts(t *testing.T) {
	got := string(RenderMarkdown(`hello <script>alert("x")</script> world`))
	if strings.Contains(got, "<script") {
		t.Errorf("script tag survived sanitization: %q", got)
	}
	if !strings.Contains(got, "hello") || !strings.Contains(got, "world") {
		t.Errorf("surrounding text lost: %q", got)
	}
}

func TestRenderMarkdownLinksOpenInNewTab(t *testing.T) {
	got := string(RenderMarkdown("[guide](https://example.com/iso27001)"))
	if !strings.Contains(got, `target="_blank"`) {
		t.Errorf("external link missing target=_blank: %q", got)
	}
}
