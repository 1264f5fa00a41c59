package restaurant

import (
	"fmt"
	"io"
	"strings"
)

type TableKind int

const (
	RegularTable TableKind = iota
	VIPTable
	OutdoorTable
)

var tableKinds = []struct {
	tag   string
	label string
}{
	RegularTable: {tag: "regular", label: "Regular"},
	VIPTable:     {tag: "vip", label: "VIP"},
	OutdoorTable: {tag: "outdoor", label: "Outdoor"},
}

func ParseTableKind(tag string) (TableKind, error) {
	t := strings.ToLower(tag)
	for k, v := range tableKinds {
		if v.tag == t {
			return TableKind(k), nil
		}
	}

	return 0, &InvalidArgumentError{Subject: "table", Value: tag}
}

func (k TableKind) String() string {
	if k < 0 || int(k) >= len(tableKinds) {
		return fmt.Sprintf("TableKind(%d)", int(k))
	}
	return tableKinds[k].tag
}

func (k TableKind) Label() string {
	if k < 0 || int(k) >= len(tableKinds) {
		return k.String()
	}
	return tableKinds[k].label
}

type Table struct {
	Kind   TableKind
	Number int
}

// NewTable builds the table variant named by tag.
func NewTable(tag string, number int) (Table, error) {
	kind, err := ParseTableKind(tag)
	if err != nil {
		return Table{}, err
	}

	return Table{Kind: kind, Number: number}, nil
}

func (t Table) Reserving() string {
	return fmt.Sprintf("Reserving %s Table #%d", t.Kind.Label(), t.Number)
}

func (t Table) Reserve(w io.Writer) error {
	_, err := fmt.Fprintln(w, t.Reserving())
	return err
}
