package icon

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/a-h/templ"
	icons "github.com/iota-uz/icons/phosphor"
)

// Name identifies an icon in the registry.
type Name string

const (
	Book            Name = "Book"
	BookOpen        Name = "BookOpen"
	Buildings       Name = "Buildings"
	Calendar        Name = "Calendar"
	ChartLine       Name = "ChartLine"
	Code            Name = "Code"
	Envelope        Name = "Envelope"
	Gauge           Name = "Gauge"
	House           Name = "House"
	Lightbulb       Name = "Lightbulb"
	List            Name = "List"
	MagnifyingGlass Name = "MagnifyingGlass"
	Newspaper       Name = "Newspaper"
	PlusCircle      Name = "PlusCircle"
	PuzzlePiece     Name = "PuzzlePiece"
	Rocket          Name = "Rocket"
	Star            Name = "Star"
	TreeStructure   Name = "TreeStructure"
	UserCircle      Name = "UserCircle"
	Users           Name = "Users"
	UsersThree      Name = "UsersThree"
	Warning         Name = "Warning"
)

// DefaultSize is the pixel size icons are rendered at inside a list row slot.
const DefaultSize = "24"

// ErrUnknownIcon is returned by Parse for names outside the registry.
var ErrUnknownIcon = errors.New("unknown icon")

var registry = map[Name]func(icons.Props) templ.Component{
	Book:            icons.Book,
	BookOpen:        icons.BookOpen,
	Buildings:       icons.Buildings,
	Calendar:        icons.Calendar,
	ChartLine:       icons.ChartLine,
	Code:            icons.Code,
	Envelope:        icons.Envelope,
	Gauge:           icons.Gauge,
	House:           icons.House,
	Lightbulb:       icons.Lightbulb,
	List:            icons.List,
	MagnifyingGlass: icons.MagnifyingGlass,
	Newspaper:       icons.Newspaper,
	PlusCircle:      icons.PlusCircle,
	PuzzlePiece:     icons.PuzzlePiece,
	Rocket:          icons.Rocket,
	Star:            icons.Star,
	TreeStructure:   icons.TreeStructure,
	UserCircle:      icons.UserCircle,
	Users:           icons.Users,
	UsersThree:      icons.UsersThree,
	Warning:         icons.Warning,
}

// Lookup returns the component for name rendered at DefaultSize.
// The second result is false when name is empty or not registered.
func Lookup(name Name) (templ.Component, bool) {
	return LookupSize(name, DefaultSize)
}

// LookupSize is Lookup with an explicit pixel size.
func LookupSize(name Name, size string) (templ.Component, bool) {
	ctor, ok := registry[name]
	if !ok {
		return nil, false
	}
	return ctor(icons.Props{Size: size}), true
}

// Known reports whether name is registered.
func (n Name) Known() bool {
	_, ok := registry[n]
	return ok
}

// Parse resolves raw against the registry, ignoring case.
// An empty string parses to the empty Name without error.
func Parse(raw string) (Name, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	if _, ok := registry[Name(raw)]; ok {
		return Name(raw), nil
	}
	for name := range registry {
		if strings.EqualFold(string(name), raw) {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownIcon, raw)
}

// Names returns every registered name in sorted order.
func Names() []Name {
	names := make([]Name, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
