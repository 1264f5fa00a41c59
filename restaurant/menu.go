package restaurant

import (
	"fmt"
	"io"
	"strings"
)

type MenuItemKind int

const (
	Appetizer MenuItemKind = iota
	MainCourse
	Dessert
)

var menuItemKinds = []struct {
	tag   string
	label string
}{
	Appetizer:  {tag: "appetizer", label: "appetizer"},
	MainCourse: {tag: "maincourse", label: "main course"},
	Dessert:    {tag: "dessert", label: "dessert"},
}

// ParseMenuItemKind matches tag case-insensitively against the known menu
// item tags.
func ParseMenuItemKind(tag string) (MenuItemKind, error) {
	t := strings.ToLower(tag)
	for k, v := range menuItemKinds {
		if v.tag == t {
			return MenuItemKind(k), nil
		}
	}

	return 0, &InvalidArgumentError{Subject: "menu item", Value: tag}
}

func (k MenuItemKind) String() string {
	if k < 0 || int(k) >= len(menuItemKinds) {
		return fmt.Sprintf("MenuItemKind(%d)", int(k))
	}
	return menuItemKinds[k].tag
}

// Label is the name used when the item is announced to the kitchen.
func (k MenuItemKind) Label() string {
	if k < 0 || int(k) >= len(menuItemKinds) {
		return k.String()
	}
	return menuItemKinds[k].label
}

type MenuItem struct {
	Kind  MenuItemKind
	Name  string
	Price float64
}

// NewMenuItem builds the menu item variant named by tag.
func NewMenuItem(tag string, name string, price float64) (MenuItem, error) {
	kind, err := ParseMenuItemKind(tag)
	if err != nil {
		return MenuItem{}, err
	}

	return MenuItem{Kind: kind, Name: name, Price: price}, nil
}

func (m MenuItem) Preparing() string {
	return fmt.Sprintf("Preparing %s: %s", m.Kind.Label(), m.Name)
}

func (m MenuItem) Prepare(w io.Writer) error {
	_, err := fmt.Fprintln(w, m.Preparing())
	return err
}
