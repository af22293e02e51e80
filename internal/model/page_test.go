package model

import "testing"

func TestPage_String(t *testing.T) {
	tests := []struct {
		page     Page
		expected string
	}{
		{PageKawaii, "kawaii"},
		{PageContent, "content"},
		{PageSettings, "settings"},
		{Page(7), "unknown"},
	}

	for _, test := range tests {
		if result := test.page.String(); result != test.expected {
			t.Errorf("Page(%d).String() = %s, expected %s", int(test.page), result, test.expected)
		}
	}
}

func TestPage_Number(t *testing.T) {
	for i, page := range Pages() {
		if page.Number() != i+1 {
			t.Errorf("Page %s Number() = %d, expected %d", page, page.Number(), i+1)
		}
	}
}

func TestPage_Valid(t *testing.T) {
	for _, page := range Pages() {
		if !page.Valid() {
			t.Errorf("Page %s should be valid", page)
		}
	}
	if Page(-1).Valid() || Page(3).Valid() {
		t.Error("Out of range pages should be invalid")
	}
}

func TestContextPage_String(t *testing.T) {
	if ContextAbout.String() != "about" || ContextSettings.String() != "settings" {
		t.Error("Unexpected context page names")
	}
	if ContextPage(5).String() != "unknown" {
		t.Error("Unknown context page should print unknown")
	}
}
