package order

// Screen is the view derived from a session's flags.
type Screen string

const (
	ScreenNotStarted Screen = "notStarted"
	ScreenBrowsing   Screen = "browsing"
	ScreenDetail     Screen = "detail"
	ScreenSummary    Screen = "summary"
	ScreenComplete   Screen = "complete"
)

// Session is the whole state of one ordering flow. The zero value is the
// initial state.
type Session struct {
	HasStarted     bool
	DetailVisible  bool
	SummaryVisible bool
	// SelectedDish is set only while DetailVisible.
	SelectedDish *Dish
	// SelectedDishes is unique by ID and kept in the order dishes were added.
	SelectedDishes []Dish
	OrderComplete  bool
}

// Screen reports which view the host should show. The detail and summary
// views stack on top of the menu, so they win over the complete banner.
func (s Session) Screen() Screen {
	switch {
	case !s.HasStarted:
		return ScreenNotStarted
	case s.DetailVisible:
		return ScreenDetail
	case s.SummaryVisible:
		return ScreenSummary
	case s.OrderComplete:
		return ScreenComplete
	default:
		return ScreenBrowsing
	}
}

// Contains reports whether a dish with id is already in the order.
func (s Session) Contains(id string) bool {
	return s.indexOf(id) >= 0
}

// Count is the number of distinct dishes in the order.
func (s Session) Count() int { return len(s.SelectedDishes) }

// Total sums the prices of the ordered dishes. It is recomputed on every call
// and saturates at MaxAmount.
func (s Session) Total() Amount {
	var total Amount
	for _, d := range s.SelectedDishes {
		if d.Price > MaxAmount-total {
			return MaxAmount
		}
		total += d.Price
	}
	return total
}

// Dishes returns a copy of the ordered dishes.
func (s Session) Dishes() []Dish {
	out := make([]Dish, len(s.SelectedDishes))
	copy(out, s.SelectedDishes)
	return out
}

func (s Session) indexOf(id string) int {
	for i, d := range s.SelectedDishes {
		if d.ID == id {
			return i
		}
	}
	return -1
}

// Reduce applies in to s and returns the next state. Intents whose
// precondition does not hold return s unchanged.
func Reduce(s Session, in Intent) Session {
	if in == nil {
		return s
	}
	return in.apply(s)
}
