// Package tui renders the record table in the terminal.
//
// DataTableModel is the interactive Bubble Tea model: a search box, Category
// and Status filter dropdowns, sortable column headers, and a pagination
// footer, all driven through a grid.Controller. RenderPlain and RenderStyled
// draw a single page for terminals that cannot run the interactive model.
package tui
