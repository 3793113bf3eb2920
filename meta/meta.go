// Package meta holds the structured metadata types of the protocol: release
// versions and type fingerprints, both with hand-written forcing per their
// declared shape.
package meta

import (
	"fmt"
	"strconv"
	"strings"

	"deepforce/force"
)

// Version is an ordered release number plus free-form tags.
type Version struct {
	Segments []int
	Tags     []string
}

// String renders the version as dotted segments followed by dash-joined
// tags, e.g. "1.20.3-rc-metal".
func (v Version) String() string {
	parts := make([]string, 0, len(v.Segments))
	for _, s := range v.Segments {
		parts = append(parts, strconv.Itoa(s))
	}

	out := strings.Join(parts, ".")
	if len(v.Tags) > 0 {
		out += "-" + strings.Join(v.Tags, "-")
	}

	return out
}

// ForceDeep walks both spines and every element.
func (v Version) ForceDeep() force.Done {
	force.Deep(v.Segments)
	force.Deep(v.Tags)

	return force.Done{}
}

// Fingerprint is a 128-bit digest stored as two fixed-width halves.
type Fingerprint struct {
	Hi, Lo uint64
}

func (f Fingerprint) String() string {
	return fmt.Sprintf("%016x%016x", f.Hi, f.Lo)
}

// ForceDeep observes both halves.
func (f Fingerprint) ForceDeep() force.Done {
	force.Deep(f.Hi)
	force.Deep(f.Lo)

	return force.Done{}
}
