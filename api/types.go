package api

type MenuItem struct {
	Type  string
	Name  string
	Price float64
}

type Menu struct {
	Items []MenuItem
}

type Table struct {
	Type   string
	Number int
}

type Tables struct {
	Tables []Table
}

type Order struct {
	Details string
}

type Payment struct {
	Amount float64
}

// Line is the response body of every action: the single line it reported.
type Line struct {
	Line string
}
