package component

// SelectionInput describes the user's intent for a single run.
type SelectionInput struct {
	// Names are the explicitly requested components, used verbatim.
	Names []string
	// All targets every discovered component, Names are ignored.
	All bool
	// Inventory discovers the available components, see List.
	Inventory func() ([]string, error)
	// Prompt asks the user to pick a subset of options.
	Prompt func(options []string) ([]string, error)
	// Warn reports a non-fatal problem with the input. May be nil.
	Warn func(msg string)
}

// ResolveSelection determines which components should be acted upon.
//
// ErrNothingToDo is returned when the inventory is consulted and is empty,
// ErrNothingSelected when the final selection is empty. Neither is a failure of the run.
// Errors from Inventory and Prompt are returned unchanged.
func ResolveSelection(in SelectionInput) ([]string, error) {
	var selected []string

	switch {
	case in.All:
		if len(in.Names) > 0 && in.Warn != nil {
			in.Warn("Specific components provided along with --all flag. Ignoring specific components and removing all.")
		}
		all, err := in.Inventory()
		if err != nil {
			return nil, err
		}
		if len(all) == 0 {
			return nil, ErrNothingToDo
		}
		selected = all
	case len(in.Names) > 0:
		selected = in.Names
	default:
		all, err := in.Inventory()
		if err != nil {
			return nil, err
		}
		if len(all) == 0 {
			return nil, ErrNothingToDo
		}
		selected, err = in.Prompt(all)
		if err != nil {
			return nil, err
		}
	}

	if len(selected) == 0 {
		return nil, ErrNothingSelected
	}

	return selected, nil
}
