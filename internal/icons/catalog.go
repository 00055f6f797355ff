// Package icons maps the icon identifiers stored on services to inline SVG.
//
// The set is closed: identifiers outside it are rejected when an admin saves
// a service and render as the default icon everywhere else.
package icons

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
)

// ID names one icon in the catalog.
type ID string

const (
	FileText      ID = "FileText"
	Plane         ID = "Plane"
	Briefcase     ID = "Briefcase"
	GraduationCap ID = "GraduationCap"
	Home          ID = "Home"
	Users         ID = "Users"
	Globe         ID = "Globe"
	Stamp         ID = "Stamp"
	Building      ID = "Building"
	Heart         ID = "Heart"
	Shield        ID = "Shield"
	Clock         ID = "Clock"
)

// Default is used for empty and unknown identifiers.
const Default = FileText

// Icon renders one catalog entry.
type Icon struct {
	ID    ID
	Label string
	paths []string
}

var catalog = map[ID]Icon{
	FileText: {ID: FileText, Label: "Document", paths: []string{
		"M15 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V7Z",
		"M14 2v4a2 2 0 0 0 2 2h4",
		"M10 9H8", "M16 13H8", "M16 17H8",
	}},
	Plane: {ID: Plane, Label: "Travel", paths: []string{
		"M17.8 19.2 16 11l3.5-3.5C21 6 21.5 4 21 3c-1-.5-3 0-4.5 1.5L13 8 4.8 6.2c-.5-.1-.9.1-1.1.5l-.3.5c-.2.5-.1 1 .3 1.3L9 12l-2 3H4l-1 1 3 2 2 3 1-1v-3l3-2 3.5 5.3c.3.4.8.5 1.3.3l.5-.2c.4-.3.6-.7.5-1.2z",
	}},
	Briefcase: {ID: Briefcase, Label: "Employment", paths: []string{
		"M16 20V4a2 2 0 0 0-2-2h-4a2 2 0 0 0-2 2v16",
		"M4 6h16a2 2 0 0 1 2 2v10a2 2 0 0 1-2 2H4a2 2 0 0 1-2-2V8a2 2 0 0 1 2-2z",
	}},
	GraduationCap: {ID: GraduationCap, Label: "Study", paths: []string{
		"M21.42 10.922a1 1 0 0 0-.019-1.838L12.83 5.18a2 2 0 0 0-1.66 0L2.6 9.08a1 1 0 0 0 0 1.832l8.57 3.908a2 2 0 0 0 1.66 0z",
		"M22 10v6", "M6 12.5V16a6 3 0 0 0 12 0v-3.5",
	}},
	Home: {ID: Home, Label: "Residence", paths: []string{
		"M15 21v-8a1 1 0 0 0-1-1h-4a1 1 0 0 0-1 1v8",
		"M3 10a2 2 0 0 1 .709-1.528l7-5.999a2 2 0 0 1 2.582 0l7 5.999A2 2 0 0 1 21 10v9a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2z",
	}},
	Users: {ID: Users, Label: "Family", paths: []string{
		"M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2",
		"M9 11a4 4 0 1 0 0-8 4 4 0 0 0 0 8z",
		"M22 21v-2a4 4 0 0 0-3-3.87", "M16 3.13a4 4 0 0 1 0 7.75",
	}},
	Globe: {ID: Globe, Label: "International", paths: []string{
		"M12 22a10 10 0 1 0 0-20 10 10 0 0 0 0 20z",
		"M12 2a14.5 14.5 0 0 0 0 20 14.5 14.5 0 0 0 0-20", "M2 12h20",
	}},
	Stamp: {ID: Stamp, Label: "Certification", paths: []string{
		"M5 22h14",
		"M19.27 13.73A2.5 2.5 0 0 0 17.5 13h-11A2.5 2.5 0 0 0 4 15.5V17a1 1 0 0 0 1 1h14a1 1 0 0 0 1-1v-1.5c0-.66-.26-1.3-.73-1.77Z",
		"M14 13V8.5C14 7 15 7 15 5a3 3 0 0 0-3-3c-1.66 0-3 1-3 3s1 2 1 3.5V13",
	}},
	Building: {ID: Building, Label: "Business", paths: []string{
		"M6 22V4a2 2 0 0 1 2-2h8a2 2 0 0 1 2 2v18Z",
		"M6 12H4a2 2 0 0 0-2 2v6a2 2 0 0 0 2 2h2",
		"M18 9h2a2 2 0 0 1 2 2v9a2 2 0 0 1-2 2h-2",
		"M10 6h4", "M10 10h4", "M10 14h4", "M10 18h4",
	}},
	Heart: {ID: Heart, Label: "Marriage", paths: []string{
		"M19 14c1.49-1.46 3-3.21 3-5.5A5.5 5.5 0 0 0 16.5 3c-1.76 0-3 .5-4.5 2-1.5-1.5-2.74-2-4.5-2A5.5 5.5 0 0 0 2 8.5c0 2.3 1.5 4.05 3 5.5l7 7Z",
	}},
	Shield: {ID: Shield, Label: "Protection", paths: []string{
		"M20 13c0 5-3.5 7.5-7.66 8.95a1 1 0 0 1-.67-.01C7.5 20.5 4 18 4 13V6a1 1 0 0 1 1-1c2 0 4.5-1.2 6.24-2.72a1.17 1.17 0 0 1 1.52 0C14.51 3.81 17 5 19 5a1 1 0 0 1 1 1z",
	}},
	Clock: {ID: Clock, Label: "Extension", paths: []string{
		"M12 22a10 10 0 1 0 0-20 10 10 0 0 0 0 20z", "M12 6v6l4 2",
	}},
}

// Lookup returns the icon for name and whether it is in the catalog.
func Lookup(name string) (Icon, bool) {
	icon, ok := catalog[ID(strings.TrimSpace(name))]
	return icon, ok
}

// Resolve returns the icon for name, or the default icon when name is empty
// or unknown.
func Resolve(name string) Icon {
	if icon, ok := Lookup(name); ok {
		return icon
	}
	return catalog[Default]
}

// Valid reports whether name may be stored on a service. Empty is allowed
// and means "use the default".
func Valid(name string) bool {
	if strings.TrimSpace(name) == "" {
		return true
	}
	_, ok := Lookup(name)
	return ok
}

// All returns every icon ordered by identifier, for pickers.
func All() []Icon {
	out := make([]Icon, 0, len(catalog))
	for _, icon := range catalog {
		out = append(out, icon)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// SVG renders the icon as an inline, stroke-styled SVG element.
func (i Icon) SVG(size int) template.HTML {
	if size <= 0 {
		size = 24
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" class="icon icon-%s" aria-hidden="true">`,
		size, size, strings.ToLower(string(i.ID)))
	for _, d := range i.paths {
		fmt.Fprintf(&b, `<path d="%s"/>`, d)
	}
	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}
