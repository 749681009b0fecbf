package order

// Intent is a named user action fed to Reduce.
type Intent interface {
	Name() string
	apply(s Session) Session
}

type (
	StartOrdering   struct{}
	SelectDish      struct{ Dish Dish }
	AddSelectedDish struct{}
	CloseDetail     struct{}
	OpenSummary     struct{}
	CloseSummary    struct{}
	// RemoveDish removes unconditionally. Confirming with the user is the
	// host's job and must happen before the intent is dispatched.
	RemoveDish    struct{ Dish Dish }
	CompleteOrder struct{}
	Reset         struct{}
)

func (StartOrdering) Name() string   { return "start_ordering" }
func (SelectDish) Name() string      { return "select_dish" }
func (AddSelectedDish) Name() string { return "add_selected_dish" }
func (CloseDetail) Name() string     { return "close_detail" }
func (OpenSummary) Name() string     { return "open_summary" }
func (CloseSummary) Name() string    { return "close_summary" }
func (RemoveDish) Name() string      { return "remove_dish" }
func (CompleteOrder) Name() string   { return "complete_order" }
func (Reset) Name() string           { return "reset" }

func (StartOrdering) apply(s Session) Session {
	if s.HasStarted {
		return s
	}
	s.HasStarted = true
	return s
}

func (i SelectDish) apply(s Session) Session {
	if !s.HasStarted {
		return s
	}
	d := i.Dish
	s.SelectedDish = &d
	s.DetailVisible = true
	return s
}

func (AddSelectedDish) apply(s Session) Session {
	if !s.DetailVisible || s.SelectedDish == nil {
		return s
	}
	if !s.Contains(s.SelectedDish.ID) {
		next := make([]Dish, len(s.SelectedDishes), len(s.SelectedDishes)+1)
		copy(next, s.SelectedDishes)
		s.SelectedDishes = append(next, *s.SelectedDish)
	}
	return closeDetail(s)
}

func (CloseDetail) apply(s Session) Session {
	if !s.DetailVisible {
		return s
	}
	return closeDetail(s)
}

func closeDetail(s Session) Session {
	s.SelectedDish = nil
	s.DetailVisible = false
	return s
}

func (OpenSummary) apply(s Session) Session {
	if !s.HasStarted {
		return s
	}
	s.SummaryVisible = true
	return s
}

func (CloseSummary) apply(s Session) Session {
	s.SummaryVisible = false
	return s
}

func (i RemoveDish) apply(s Session) Session {
	if !s.SummaryVisible {
		return s
	}
	idx := s.indexOf(i.Dish.ID)
	if idx < 0 {
		return s
	}
	next := make([]Dish, 0, len(s.SelectedDishes)-1)
	next = append(next, s.SelectedDishes[:idx]...)
	s.SelectedDishes = append(next, s.SelectedDishes[idx+1:]...)
	return s
}

func (CompleteOrder) apply(s Session) Session {
	if !s.SummaryVisible {
		return s
	}
	s.OrderComplete = true
	s.SummaryVisible = false
	return s
}

func (Reset) apply(Session) Session {
	return Session{}
}
