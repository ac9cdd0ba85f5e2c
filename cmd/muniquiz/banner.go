package main

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/verte-zerg/muniquiz/internal/facts"
)

const (
	defaultBannerWidth = 72
	maxBannerWidth     = 100
	bannerMargin       = 4 // room for the ">>> " output prefix
)

const exitHint = "Exit with ^C"

// banner returns the startup instructions wrapped to width. The shared-names
// notice is printed only when src has numbered subjects.
func banner(src facts.Source, width int) string {
	if width <= 0 {
		width = defaultBannerWidth
	}
	width = min(width, maxBannerWidth) - bannerMargin
	if width < 20 {
		width = 20
	}
	text := exitHint
	if names := facts.SharedNames(src); len(names) > 0 {
		text += "\n" + wordwrap.String(sharedNamesNotice(names), width)
	}
	return text
}

func sharedNamesNotice(names []string) string {
	return "Municipalities that share names will be presented with a number " +
		"denoting its place in order from north to south among the identically named " +
		"municipalities. The following are shared names: " + strings.Join(names, ", ") +
		". When necessary northern-most points are compared."
}
