// Package icon defines the closed set of icon names that list rows and
// layouts may reference, and resolves them to phosphor icon components.
//
// Data files refer to icons by name. Names outside the set never fail a
// render: Lookup reports them as absent and callers omit the icon.
package icon
