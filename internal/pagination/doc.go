// Package pagination provides the presentation side of paging: validated
// page/page-size parameters, result metadata ("Showing 21 to 40 of 93"),
// and the window of page buttons shown under the table.
//
// Slicing records into pages is done by pipeline.Paginate; this package only
// describes pages.
package pagination
