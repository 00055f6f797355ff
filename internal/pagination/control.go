package pagination

// Control is the full render model of a pagination bar.
type Control struct {
	CurrentPage  int     `json:"current_page"`
	TotalPages   int     `json:"total_pages"`
	Tokens       []Token `json:"tokens"`
	PrevDisabled bool    `json:"prev_disabled"`
	NextDisabled bool    `json:"next_disabled"`
}

// NewControl builds the bar for the given position.
func NewControl(currentPage, totalPages int) Control {
	return Control{
		CurrentPage:  currentPage,
		TotalPages:   totalPages,
		Tokens:       Window(currentPage, totalPages),
		PrevDisabled: currentPage == 1,
		NextDisabled: currentPage == totalPages,
	}
}

// Visible reports whether the bar should be rendered at all.
func (c Control) Visible() bool { return c.TotalPages > 1 }

// IsCurrent reports whether t is the page being shown.
func (c Control) IsCurrent(t Token) bool {
	return !t.Ellipsis && t.Page == c.CurrentPage
}

// PrevPage and NextPage are the targets of the arrow controls. They are not
// clamped; check PrevDisabled and NextDisabled first.
func (c Control) PrevPage() int { return c.CurrentPage - 1 }

func (c Control) NextPage() int { return c.CurrentPage + 1 }

// Select forwards a page token to onSelect. Ellipsis tokens are inert.
func (c Control) Select(t Token, onSelect func(page int)) {
	if t.Ellipsis || onSelect == nil {
		return
	}
	onSelect(t.Page)
}

// Prev triggers onSelect with the previous page unless disabled.
func (c Control) Prev(onSelect func(page int)) {
	if c.PrevDisabled || onSelect == nil {
		return
	}
	onSelect(c.PrevPage())
}

// Next triggers onSelect with the next page unless disabled.
func (c Control) Next(onSelect func(page int)) {
	if c.NextDisabled || onSelect == nil {
		return
	}
	onSelect(c.NextPage())
}
