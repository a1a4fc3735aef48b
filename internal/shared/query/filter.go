package query

// Window is a limit/offset slice of an ordered result set.
type Window struct {
	Limit  int
	Offset int
}

// Normalize fills in the default limit and caps it at max.
func (w Window) Normalize(defaultLimit, max int) Window {
	if w.Limit <= 0 {
		w.Limit = defaultLimit
	}
	if max > 0 && w.Limit > max {
		w.Limit = max
	}
	if w.Offset < 0 {
		w.Offset = 0
	}
	return w
}
