package result

// Result is a display-ready search record.
type Result struct {
	title string
	icon  string
	url   string
}

// New creates a display record.
func New(title, icon, url string) Result {
	return Result{title: title, icon: icon, url: url}
}

// Title returns the text shown in the result list.
func (r *Result) Title() string { return r.title }

// Icon returns the icon identifier shown next to the title.
func (r *Result) Icon() string { return r.icon }

// URL returns the locator the result links to, or "".
func (r *Result) URL() string { return r.url }
