package restaurant

const (
	SampleOrder   = "Burger and Fries"
	SamplePayment = 19.99
)

// MenuItemRequest is the raw input of the menu item factory.
type MenuItemRequest struct {
	Type  string
	Name  string
	Price float64
}

// TableRequest is the raw input of the table factory.
type TableRequest struct {
	Type   string
	Number int
}

func SampleMenu() []MenuItemRequest {
	return []MenuItemRequest{
		{Type: "appetizer", Name: "Spring Rolls", Price: 5.99},
		{Type: "maincourse", Name: "Grilled Chicken", Price: 15.99},
		{Type: "dessert", Name: "Cheesecake", Price: 6.99},
	}
}

func SampleTables() []TableRequest {
	return []TableRequest{
		{Type: "regular", Number: 1},
		{Type: "vip", Number: 2},
		{Type: "outdoor", Number: 3},
	}
}

// RunDemo walks through the sample order, payment, menu and tables one step
// at a time, writing one line per step. The first error stops the run.
func RunDemo(r *Restaurant) error {
	if err := r.Orders().ProcessOrder(SampleOrder); err != nil {
		return err
	}
	if err := r.Payments().ProcessPayment(SamplePayment); err != nil {
		return err
	}

	for _, req := range SampleMenu() {
		item, err := NewMenuItem(req.Type, req.Name, req.Price)
		if err != nil {
			return err
		}
		if err := item.Prepare(r.Output()); err != nil {
			return err
		}
	}

	for _, req := range SampleTables() {
		table, err := NewTable(req.Type, req.Number)
		if err != nil {
			return err
		}
		if err := table.Reserve(r.Output()); err != nil {
			return err
		}
	}

	return nil
}
