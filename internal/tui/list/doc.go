// Package listview provides a generic cursor list that renders only the rows
// that fit its viewport. The data table's filter dropdowns use it for their
// option lists.
package listview
