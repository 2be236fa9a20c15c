package model

import (
	"sort"
	"strings"
)

// TravelStyle is the traveller's dominant style.
type TravelStyle string

const (
	StyleLuxury    TravelStyle = "Luxury"
	StyleBudget    TravelStyle = "Budget"
	StyleAdventure TravelStyle = "Adventure"
	StyleCultural  TravelStyle = "Cultural"
	StyleRomantic  TravelStyle = "Romantic"
	StyleFamily    TravelStyle = "Family"
)

// TravelStyles lists every style in extraction priority order.
var TravelStyles = []TravelStyle{StyleLuxury, StyleBudget, StyleAdventure, StyleCultural, StyleRomantic, StyleFamily}

// Valid reports whether s is one of the known styles.
func (s TravelStyle) Valid() bool {
	for _, known := range TravelStyles {
		if s == known {
			return true
		}
	}
	return false
}

// UserProfile holds preferences accumulated for one user.
type UserProfile struct {
	PreferredBudget      *string      `json:"preferredBudget,omitempty"`
	TravelStyle          *TravelStyle `json:"travelStyle,omitempty"`
	FavoriteDestinations []string     `json:"favoriteDestinations"`
	DietaryRestrictions  []string     `json:"dietaryRestrictions"`
}

// ProfilePatch is a merge-patch for UserProfile. Nil scalar fields are left
// untouched; set fields are added to the stored sets.
type ProfilePatch struct {
	PreferredBudget      *string      `json:"preferredBudget,omitempty"`
	TravelStyle          *TravelStyle `json:"travelStyle,omitempty"`
	FavoriteDestinations []string     `json:"favoriteDestinations,omitempty"`
	DietaryRestrictions  []string     `json:"dietaryRestrictions,omitempty"`
}

// NewUserProfile returns an empty profile with non-nil sets.
func NewUserProfile() UserProfile {
	return UserProfile{
		FavoriteDestinations: []string{},
		DietaryRestrictions:  []string{},
	}
}

// IsEmpty reports whether the patch would change nothing.
func (p ProfilePatch) IsEmpty() bool {
	return p.PreferredBudget == nil && p.TravelStyle == nil &&
		len(p.FavoriteDestinations) == 0 && len(p.DietaryRestrictions) == 0
}

// Merge applies patch and returns the merged copy. The receiver is not modified.
func (p UserProfile) Merge(patch ProfilePatch) UserProfile {
	out := p.Clone()
	if patch.PreferredBudget != nil {
		v := *patch.PreferredBudget
		out.PreferredBudget = &v
	}
	if patch.TravelStyle != nil {
		v := *patch.TravelStyle
		out.TravelStyle = &v
	}
	out.FavoriteDestinations = union(out.FavoriteDestinations, patch.FavoriteDestinations)
	out.DietaryRestrictions = union(out.DietaryRestrictions, patch.DietaryRestrictions)
	return out
}

// Clone returns a deep copy.
func (p UserProfile) Clone() UserProfile {
	out := UserProfile{
		FavoriteDestinations: append([]string{}, p.FavoriteDestinations...),
		DietaryRestrictions:  append([]string{}, p.DietaryRestrictions...),
	}
	if p.PreferredBudget != nil {
		v := *p.PreferredBudget
		out.PreferredBudget = &v
	}
	if p.TravelStyle != nil {
		v := *p.TravelStyle
		out.TravelStyle = &v
	}
	return out
}

// union merges two string sets case-insensitively, keeping the first spelling
// seen, and returns them sorted.
func union(base, add []string) []string {
	seen := make(map[string]struct{}, len(base)+len(add))
	out := make([]string, 0, len(base)+len(add))
	for _, list := range [][]string{base, add} {
		for _, v := range list {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			key := strings.ToLower(v)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

// StringPtr returns a pointer to v.
func StringPtr(v string) *string { return &v }

// StylePtr returns a pointer to s.
func StylePtr(s TravelStyle) *TravelStyle { return &s }
