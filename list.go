package genpdf

// UnorderedList is a vertical stack of bullet points sharing one bullet
// glyph (default "–").
type UnorderedList struct {
	inner  *LinearLayout
	bullet string
}

func NewUnorderedList() *UnorderedList {
	return &UnorderedList{inner: NewLinearLayout(), bullet: "–"}
}

func (u *UnorderedList) WithBullet(b string) *UnorderedList {
	u.bullet = b
	return u
}

func (u *UnorderedList) Push(e Element) *UnorderedList {
	u.inner.Push(NewBulletPoint(e).WithBullet(u.bullet))
	return u
}

// PushList nests another list as a sub-list: it renders with no marker
// of its own and half the indent, producing visual hierarchy.
func (u *UnorderedList) PushList(sub Element) *UnorderedList {
	u.inner.Push(NewBulletPoint(sub).WithBullet("").WithIndent(5))
	return u
}

func (u *UnorderedList) Measure(ctx *Context, style Style, a Area) (Mm, error) {
	return u.inner.Measure(ctx, style, a)
}

func (u *UnorderedList) Render(ctx *Context, a Area, style Style) (RenderResult, error) {
	return u.inner.Render(ctx, a, style)
}

// OrderedList numbers its items sequentially, formatting each bullet as
// "{prefix}{n}.". Nesting an OrderedList as a sub-list of an outer item
// displaying "m." makes the inner list's prefix "m.", so its own items
// read "m.1.", "m.2.", ...
type OrderedList struct {
	inner       *LinearLayout
	next        int
	prefix      string
	lastBullet  string
}

func NewOrderedList() *OrderedList {
	return &OrderedList{inner: NewLinearLayout(), next: 1}
}

// StartingAt overrides the first item's number (default 1).
func (o *OrderedList) StartingAt(n int) *OrderedList {
	o.next = n
	return o
}

func (o *OrderedList) Push(e Element) *OrderedList {
	bullet := o.prefix + itoa(o.next) + "."
	o.lastBullet = bullet
	o.next++
	o.inner.Push(NewBulletPoint(e).WithBullet(bullet))
	return o
}

// PushList nests another OrderedList as a sub-list under the item just
// pushed, inheriting its displayed bullet as a numbering prefix, both for
// items the sub-list already holds and for items pushed to it later. Unlike
// UnorderedList.PushList, the indent is not halved: a numbered marker
// still needs the full indent to read clearly.
func (o *OrderedList) PushList(sub *OrderedList) *OrderedList {
	sub.prefix = o.lastBullet
	for _, c := range sub.inner.children {
		if bp, ok := c.(*BulletPoint); ok && bp.bullet != "" {
			bp.bullet = sub.prefix + bp.bullet
		}
	}
	if sub.lastBullet != "" {
		sub.lastBullet = sub.prefix + sub.lastBullet
	}
	o.inner.Push(NewBulletPoint(sub).WithBullet(""))
	return o
}

func (o *OrderedList) Measure(ctx *Context, style Style, a Area) (Mm, error) {
	return o.inner.Measure(ctx, style, a)
}

func (o *OrderedList) Render(ctx *Context, a Area, style Style) (RenderResult, error) {
	return o.inner.Render(ctx, a, style)
}
