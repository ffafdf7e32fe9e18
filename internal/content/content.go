// Package content is the catalog of things a child can learn: letters,
// numbers, colors, shapes, animals and food. Items are a closed set of
// variants; callers switch on the concrete type.
package content

import (
	"fmt"
	"strconv"

	"github.com/verte-zerg/tuitrace/internal/alphabet"
)

// Kind names a content variant.
type Kind string

// Content kinds.
const (
	KindLetter Kind = "letter"
	KindNumber Kind = "number"
	KindColor  Kind = "color"
	KindShape  Kind = "shape"
	KindAnimal Kind = "animal"
	KindFood   Kind = "food"
)

// Kinds returns every kind in display order.
func Kinds() []Kind {
	return []Kind{KindLetter, KindNumber, KindColor, KindShape, KindAnimal, KindFood}
}

// ParseKind maps a name to a Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown content kind %q", name)
}

// Item is one catalog entry. It is implemented only by the types in this
// package.
type Item interface {
	// Key identifies the item within its kind.
	Key() string
	item()
}

// Letter is an alphabet letter.
type Letter struct {
	ID   string
	Lang string
}

// Number is a small whole number.
type Number struct {
	Value int
}

// Color is a named color with its RGB hex value.
type Color struct {
	Name string
	Hex  string
}

// Shape is a plane figure. Sides is 0 for round shapes.
type Shape struct {
	Name  string
	Sides int
}

// Animal is an animal with an emoji and the sound it makes.
type Animal struct {
	Name  string
	Emoji string
	Sound string
}

// Food is something to eat.
type Food struct {
	Name  string
	Emoji string
}

func (l Letter) Key() string { return l.ID }
func (n Number) Key() string { return strconv.Itoa(n.Value) }
func (c Color) Key() string  { return c.Name }
func (s Shape) Key() string  { return s.Name }
func (a Animal) Key() string { return a.Name }
func (f Food) Key() string   { return f.Name }

func (Letter) item() {}
func (Number) item() {}
func (Color) item()  {}
func (Shape) item()  {}
func (Animal) item() {}
func (Food) item()   {}

// KindOf returns the kind of item.
func KindOf(it Item) Kind {
	switch it.(type) {
	case Letter:
		return KindLetter
	case Number:
		return KindNumber
	case Color:
		return KindColor
	case Shape:
		return KindShape
	case Animal:
		return KindAnimal
	case Food:
		return KindFood
	default:
		panic(fmt.Sprintf("content: unknown item type %T", it))
	}
}

// StrokeID returns the stroke model id used to trace item. Only letters and
// single digits can be traced.
func StrokeID(it Item) (string, bool) {
	switch v := it.(type) {
	case Letter:
		return v.ID, true
	case Number:
		if v.Value >= 0 && v.Value <= 9 {
			return strconv.Itoa(v.Value), true
		}
		return "", false
	case Color, Shape, Animal, Food:
		return "", false
	default:
		panic(fmt.Sprintf("content: unknown item type %T", it))
	}
}

var colors = []Color{
	{Name: "red", Hex: "#E53935"},
	{Name: "orange", Hex: "#FB8C00"},
	{Name: "yellow", Hex: "#FDD835"},
	{Name: "green", Hex: "#43A047"},
	{Name: "blue", Hex: "#1E88E5"},
	{Name: "purple", Hex: "#8E24AA"},
	{Name: "pink", Hex: "#EC407A"},
	{Name: "brown", Hex: "#6D4C41"},
	{Name: "black", Hex: "#212121"},
	{Name: "white", Hex: "#FAFAFA"},
}

var shapes = []Shape{
	{Name: "circle"},
	{Name: "triangle", Sides: 3},
	{Name: "square", Sides: 4},
	{Name: "rectangle", Sides: 4},
	{Name: "pentagon", Sides: 5},
	{Name: "hexagon", Sides: 6},
	{Name: "star", Sides: 10},
	{Name: "heart"},
}

var animals = []Animal{
	{Name: "dog", Emoji: "🐶", Sound: "woof"},
	{Name: "cat", Emoji: "🐱", Sound: "meow"},
	{Name: "cow", Emoji: "🐮", Sound: "moo"},
	{Name: "sheep", Emoji: "🐑", Sound: "baa"},
	{Name: "duck", Emoji: "🦆", Sound: "quack"},
	{Name: "lion", Emoji: "🦁", Sound: "roar"},
	{Name: "horse", Emoji: "🐴", Sound: "neigh"},
	{Name: "frog", Emoji: "🐸", Sound: "ribbit"},
}

var foods = []Food{
	{Name: "apple", Emoji: "🍎"},
	{Name: "banana", Emoji: "🍌"},
	{Name: "bread", Emoji: "🍞"},
	{Name: "cheese", Emoji: "🧀"},
	{Name: "carrot", Emoji: "🥕"},
	{Name: "grapes", Emoji: "🍇"},
	{Name: "milk", Emoji: "🥛"},
	{Name: "egg", Emoji: "🥚"},
}

// Items returns the catalog entries of kind. Letters come from lang, which
// defaults to English.
func Items(kind Kind, lang string) ([]Item, error) {
	var out []Item
	switch kind {
	case KindLetter:
		if lang == "" {
			lang = alphabet.English
		}
		ids, err := alphabet.Letters(lang)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			out = append(out, Letter{ID: id, Lang: lang})
		}
	case KindNumber:
		for i := 0; i <= 10; i++ {
			out = append(out, Number{Value: i})
		}
	case KindColor:
		for _, c := range colors {
			out = append(out, c)
		}
	case KindShape:
		for _, s := range shapes {
			out = append(out, s)
		}
	case KindAnimal:
		for _, a := range animals {
			out = append(out, a)
		}
	case KindFood:
		for _, f := range foods {
			out = append(out, f)
		}
	default:
		return nil, fmt.Errorf("unknown content kind %q", kind)
	}
	return out, nil
}
