package printbook

import (
	"fmt"
	"sort"

	"github.com/alnah/go-printbook/internal/assets"
)

// Built-in profile names.
const (
	ProfileStandard = "standard"
	ProfileEnhanced = "enhanced"
)

// DefaultProfile is used when Input.Profile is empty.
const DefaultProfile = ProfileStandard

// Profile describes a set of print CSS overrides. The CSS itself is the
// style asset named after the profile.
type Profile struct {
	Name string
	// Description is the summary line printed after a build.
	Description string
	// HeaderComment is written as an HTML comment after the doctype.
	HeaderComment string
	// CSSHeading labels the print rules inside the <style> block.
	CSSHeading string
	// DefaultOutput is the output file name used when none is given.
	DefaultOutput string
}

var builtinProfiles = map[string]Profile{
	ProfileStandard: {
		Name:          ProfileStandard,
		Description:   "Added print color preservation rules",
		HeaderComment: "Print-ready version with embedded styles and cover image",
		CSSHeading:    "Additional print enhancements",
		DefaultOutput: "complete_medical_textbook_print.html",
	},
	ProfileEnhanced: {
		Name:          ProfileEnhanced,
		Description:   "Added ENHANCED print color preservation with fallback colors",
		HeaderComment: "Enhanced print-ready version with maximum color preservation",
		CSSHeading:    "Enhanced print styles with maximum color preservation",
		DefaultOutput: "complete_medical_textbook_print_enhanced.html",
	},
}

// LookupProfile returns the built-in profile with the given name.
// An empty name selects DefaultProfile.
func LookupProfile(name string) (Profile, error) {
	if name == "" {
		name = DefaultProfile
	}
	p, ok := builtinProfiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return p, nil
}

// ProfileNames returns the built-in profile names, sorted.
func ProfileNames() []string {
	names := make([]string, 0, len(builtinProfiles))
	for name := range builtinProfiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListProfiles returns the built-in profiles plus one custom profile per
// style found in basePath/styles, sorted by name. An empty basePath lists
// the built-in profiles only.
func ListProfiles(basePath string) ([]Profile, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}

	names := resolver.StyleNames()
	profiles := make([]Profile, 0, len(names))
	for _, name := range names {
		if p, ok := builtinProfiles[name]; ok {
			profiles = append(profiles, p)
			continue
		}
		profiles = append(profiles, customProfile(name))
	}
	return profiles, nil
}

// customProfile describes a profile supplied as a style asset only.
func customProfile(name string) Profile {
	return Profile{
		Name:          name,
		Description:   fmt.Sprintf("Added %s print rules", name),
		HeaderComment: fmt.Sprintf("Print-ready version (%s profile)", name),
		CSSHeading:    fmt.Sprintf("Print styles: %s", name),
		DefaultOutput: fmt.Sprintf("complete_medical_textbook_print_%s.html", name),
	}
}
