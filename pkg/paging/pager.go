package paging

import "fdbview/pkg/source"

// Pager tracks which page of one table is visible. It deliberately holds
// no rows and no table handle: every page is fetched from a freshly
// resolved table, so replacing the open database can never leave a pager
// pointing into a dead mapping.
type Pager struct {
	table string
	page  int
	pages int
}

// NewPager counts t's iterable rows in one full pass and positions the
// pager on page 0. The pass doubles as the schema check for the table.
func NewPager(t source.Table) (*Pager, error) {
	if err := validateColumns(t.Name(), t.Columns()); err != nil {
		return nil, err
	}

	n, err := CountRows(t)
	if err != nil {
		return nil, err
	}

	return &Pager{table: t.Name(), pages: NumPages(n)}, nil
}

// NumPages returns the page count for a table with rows iterable rows.
// An empty table still shows one empty page.
func NumPages(rows int) int {
	if rows <= 0 {
		return 1
	}
	return (rows-1)/PageSize + 1
}

// Table returns the name of the table being paged.
func (p *Pager) Table() string {
	return p.table
}

// Page returns the current zero-based page index.
func (p *Pager) Page() int {
	return p.page
}

// Pages returns the total page count.
func (p *Pager) Pages() int {
	return p.pages
}

// Range returns the half-open row range covered by the current page.
func (p *Pager) Range() (start, end int) {
	return p.page * PageSize, (p.page + 1) * PageSize
}

// Next advances to the following page. On the last page it does not move
// and reports false; that is a no-effect condition, not an error.
func (p *Pager) Next() bool {
	if p.page+1 >= p.pages {
		return false
	}
	p.page++
	return true
}

// Prev moves to the preceding page, reporting false on page 0.
func (p *Pager) Prev() bool {
	if p.page == 0 {
		return false
	}
	p.page--
	return true
}
