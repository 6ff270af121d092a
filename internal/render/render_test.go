package render

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/dgallion1/docsite/internal/summary"
)

func parse(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse rendered output: %v", err)
	}
	return doc
}

func sampleSections() []summary.Section {
	return []summary.Section{
		{Title: "A", Content: []summary.Item{
			{Links: []summary.Link{{URL: "l1.html", Title: "l1"}, {URL: "l2.html", Title: "l2"}}},
		}},
		{Title: "B", Content: []summary.Item{
			{Links: []summary.Link{{URL: "l3.html", Title: "l3"}}},
		}},
	}
}

func TestRender_Skeleton(t *testing.T) {
	out, err := Render(nil, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Errorf("expected doctype prefix, got %q", out[:min(len(out), 40)])
	}

	doc := parse(t, out)
	if got := doc.Find("head > title").Text(); got != DefaultTitle {
		t.Errorf("expected title %q, got %q", DefaultTitle, got)
	}
	if href, _ := doc.Find(`head > link[rel="stylesheet"]`).Attr("href"); href != "style.css" {
		t.Errorf("expected stylesheet href %q, got %q", "style.css", href)
	}
	if src, _ := doc.Find("head > script").Attr("src"); src != "script.js" {
		t.Errorf("expected script src %q, got %q", "script.js", src)
	}
	if n := doc.Find(".mobile-nav .hamburger .line").Length(); n != 3 {
		t.Errorf("expected 3 hamburger lines, got %d", n)
	}
	if got := doc.Find(".mobile-nav h1").Text(); got != DefaultHeading {
		t.Errorf("expected heading %q, got %q", DefaultHeading, got)
	}
	if got := strings.TrimSpace(doc.Find(".container > .content").Text()); got != Placeholder {
		t.Errorf("expected placeholder content, got %q", got)
	}
	if n := doc.Find(".sidebar").Children().Length(); n != 0 {
		t.Errorf("expected empty sidebar, got %d children", n)
	}
}

func TestRender_SidebarOrder(t *testing.T) {
	out, err := Render(sampleSections(), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := parse(t, out)

	var names []string
	doc.Find(".sidebar-section .section-name").Each(func(_ int, s *goquery.Selection) {
		names = append(names, s.Text())
	})
	if strings.Join(names, ",") != "A,B" {
		t.Errorf("expected sections A,B, got %v", names)
	}

	var links []string
	doc.Find(".sidebar a").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		links = append(links, s.Text()+"="+href)
	})
	want := "l1=l1.html,l2=l2.html,l3=l3.html"
	if got := strings.Join(links, ","); got != want {
		t.Errorf("expected links %q, got %q", want, got)
	}

	if n := doc.Find(".sidebar-section").First().Find("ul > li").Length(); n != 2 {
		t.Errorf("expected 2 items in first section, got %d", n)
	}
}

func TestRender_DuplicateLinksKept(t *testing.T) {
	link := summary.Link{URL: "same.html", Title: "same"}
	sections := []summary.Section{{Title: "dup", Content: []summary.Item{
		{Links: []summary.Link{link}},
		{Links: []summary.Link{link, link}},
	}}}

	out, err := Render(sections, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := parse(t, out).Find(".sidebar a").Length(); n != 3 {
		t.Errorf("expected 3 anchors, got %d", n)
	}
}

func TestRender_CarriesHydrationArtifacts(t *testing.T) {
	out, err := Render(sampleSections(), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `data-hk="0-0"`) {
		t.Error("expected hydration keys in raw output")
	}
	if !strings.Contains(out, "<!--view:sidebar-->") {
		t.Error("expected component comments in raw output")
	}
}

func TestRender_EscapesUntrustedStrings(t *testing.T) {
	sections := []summary.Section{{
		Title: "<b>bold</b>",
		Content: []summary.Item{{Links: []summary.Link{
			{URL: `x" onclick="alert(1)`, Title: "<script>alert(1)</script>"},
		}}},
	}}

	out, err := Render(sections, Options{Title: "</title><script>", Heading: "<i>h</i>"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := parse(t, out)

	if n := doc.Find("script").Length(); n != 1 {
		t.Errorf("expected only the asset script element, got %d", n)
	}
	if n := doc.Find(".section-name b, .mobile-nav h1 i").Length(); n != 0 {
		t.Errorf("expected no injected elements, got %d", n)
	}
	a := doc.Find(".sidebar a")
	if _, ok := a.Attr("onclick"); ok {
		t.Error("attribute injection through url")
	}
	if got := a.Text(); got != "<script>alert(1)</script>" {
		t.Errorf("expected link text preserved as text, got %q", got)
	}
	if got := doc.Find("title").Text(); got != "</title><script>" {
		t.Errorf("expected title preserved as text, got %q", got)
	}
}

func TestRender_CustomOptions(t *testing.T) {
	out, err := Render(nil, Options{Title: "API", Heading: "mylib", Intro: "# Welcome\n\nRead *this*."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := parse(t, out)

	if got := doc.Find("title").Text(); got != "API" {
		t.Errorf("expected title %q, got %q", "API", got)
	}
	if got := doc.Find(".mobile-nav h1").Text(); got != "mylib" {
		t.Errorf("expected heading %q, got %q", "mylib", got)
	}
	if got := doc.Find(".content h1").Text(); got != "Welcome" {
		t.Errorf("expected intro heading %q, got %q", "Welcome", got)
	}
	if got := doc.Find(".content em").Text(); got != "this" {
		t.Errorf("expected emphasis %q, got %q", "this", got)
	}
	if strings.Contains(doc.Find(".content").Text(), Placeholder) {
		t.Error("placeholder should be replaced by the intro")
	}
}

func TestContent_IntroRawHTMLOmitted(t *testing.T) {
	out, err := Render(nil, Options{Intro: "hello\n\n<script>alert(1)</script>\n"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := parse(t, out).Find(".content script").Length(); n != 0 {
		t.Errorf("expected raw html in intro to be dropped, got %d script elements", n)
	}
}

func TestRender_Deterministic(t *testing.T) {
	first, err := Render(sampleSections(), Options{Intro: "text"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := Render(sampleSections(), Options{Intro: "text"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again != first {
			t.Fatalf("render %d differs from the first", i)
		}
	}
}
