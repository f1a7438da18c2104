package cmd

import (
	"testing"

	"github.com/max-dev001/ZeBadge/models"
)

func TestFindClosestPage(t *testing.T) {
	pages := []models.Page{
		{Name: "conference"},
		{Name: "workshop"},
		{Name: "party"},
	}

	best, score := findClosestPage("conferenc", pages)
	if best.Name != "conference" || score != 1 {
		t.Errorf("findClosestPage(conferenc) = %q (score %d), want conference (1)", best.Name, score)
	}

	// A name nothing like any stored page scores no better than
	// spelling it from scratch.
	_, score = findClosestPage("xyz", pages)
	if score < len("xyz") {
		t.Errorf("findClosestPage(xyz) score = %d, want >= 3", score)
	}
}
