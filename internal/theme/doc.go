// Package theme holds the per-section look of the page.
//
// There is exactly one Record per section, fixed at startup. Lookups never
// fail: any name outside the table resolves to the home record, since a
// wrong color is better than a broken page.
package theme
