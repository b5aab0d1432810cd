// Package geotag encodes and decodes the synthetic tags the backend
// uses to carry a note's map position and display color.
//
// The wire schema has no first-class geo fields; instead each note's
// tag list contains entries of the form "lat:<float>", "lng:<float>"
// and "col:<hex>". This package is the single boundary where those
// tags are produced and parsed, so no handler or template ever splits
// tag strings itself.
package geotag

import (
	"strconv"
	"strings"
)

// Fallback values used when a note's tags are missing or unparseable.
// Such notes still render, pinned at the fallback coordinate.
const (
	FallbackLat   = 52.23
	FallbackLng   = 21.01
	FallbackColor = "#3b82f6"
)

// MarkerTag identifies notes created through this app.
const MarkerTag = "geonote"

const (
	latPrefix = "lat:"
	lngPrefix = "lng:"
	colPrefix = "col:"
)

// Point is a note's decoded map position and display color.
type Point struct {
	Lat   float64
	Lng   float64
	Color string
}

// Encode renders a position and color into the synthetic tag list,
// ending with the marker tag.
func Encode(lat, lng float64, color string) []string {
	return []string{
		latPrefix + strconv.FormatFloat(lat, 'f', -1, 64),
		lngPrefix + strconv.FormatFloat(lng, 'f', -1, 64),
		colPrefix + color,
		MarkerTag,
	}
}

// UserTags returns the tags that are not synthetic geo entries, in
// their original order. These are the tags shown to the user.
func UserTags(tags []string) []string {
	var out []string
	for _, t := range tags {
		if t == MarkerTag ||
			strings.HasPrefix(t, latPrefix) ||
			strings.HasPrefix(t, lngPrefix) ||
			strings.HasPrefix(t, colPrefix) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Decode extracts the position and color from a note's tags. Any
// missing or unparseable entry falls back independently; a note with
// no geo tags at all decodes to the fallback point rather than
// failing. Later duplicates win, matching how the tags are appended.
func Decode(tags []string) Point {
	p := Point{Lat: FallbackLat, Lng: FallbackLng, Color: FallbackColor}
	for _, t := range tags {
		switch {
		case strings.HasPrefix(t, latPrefix):
			if v, err := strconv.ParseFloat(t[len(latPrefix):], 64); err == nil {
				p.Lat = v
			}
		case strings.HasPrefix(t, lngPrefix):
			if v, err := strconv.ParseFloat(t[len(lngPrefix):], 64); err == nil {
				p.Lng = v
			}
		case strings.HasPrefix(t, colPrefix):
			if c := t[len(colPrefix):]; c != "" {
				p.Color = c
			}
		}
	}
	return p
}
