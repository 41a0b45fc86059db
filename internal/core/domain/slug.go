package domain

// =============================================================================
// Slug Generation
// =============================================================================

// Slugify converts a pond name to a filesystem- and key-safe slug.
//
// The transformation rules are:
//   - Lowercase letters (a-z) are kept as-is
//   - Digits (0-9) are kept as-is
//   - Hyphens (-) are kept as-is
//   - Uppercase letters (A-Z) are converted to lowercase
//   - Spaces and underscores are converted to hyphens
//   - All other characters are removed
//
// This is a pure function with no side effects.
//
// Example:
//
//	Slugify("My Garden Pond")  // returns "my-garden-pond"
//	Slugify("Koi Pond 2.0!")   // returns "koi-pond-20"
func Slugify(name string) string {
	slug := ""
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			slug += string(r)
		} else if r >= 'A' && r <= 'Z' {
			slug += string(r + 32) // convert to lowercase
		} else if r == ' ' || r == '_' {
			slug += "-"
		}
		// All other characters are dropped
	}
	return slug
}
