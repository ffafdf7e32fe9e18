package content

import (
	"fmt"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UILanguages are the languages labels exist in, English first as fallback.
var UILanguages = []language.Tag{language.English, language.Hebrew, language.Russian}

var matcher = language.NewMatcher(UILanguages)

// MatchLanguage picks the closest supported UI language for a BCP 47 tag or
// Accept-Language style list such as "ru-RU" or "he, en;q=0.8".
func MatchLanguage(pref string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(pref)
	if err != nil || len(tags) == 0 {
		return language.English
	}
	_, idx, _ := matcher.Match(tags...)
	return UILanguages[idx]
}

type label struct {
	en, he, ru string
}

func (l label) in(tag language.Tag) string {
	switch base, _ := tag.Base(); base.String() {
	case "he":
		return l.he
	case "ru":
		return l.ru
	default:
		return l.en
	}
}

var numberLabels = []label{
	{"zero", "אפס", "ноль"},
	{"one", "אחת", "один"},
	{"two", "שתיים", "два"},
	{"three", "שלוש", "три"},
	{"four", "ארבע", "четыре"},
	{"five", "חמש", "пять"},
	{"six", "שש", "шесть"},
	{"seven", "שבע", "семь"},
	{"eight", "שמונה", "восемь"},
	{"nine", "תשע", "девять"},
	{"ten", "עשר", "десять"},
}

var wordLabels = map[string]label{
	"red":    {"red", "אדום", "красный"},
	"orange": {"orange", "כתום", "оранжевый"},
	"yellow": {"yellow", "צהוב", "жёлтый"},
	"green":  {"green", "ירוק", "зелёный"},
	"blue":   {"blue", "כחול", "синий"},
	"purple": {"purple", "סגול", "фиолетовый"},
	"pink":   {"pink", "ורוד", "розовый"},
	"brown":  {"brown", "חום", "коричневый"},
	"black":  {"black", "שחור", "чёрный"},
	"white":  {"white", "לבן", "белый"},

	"circle":    {"circle", "עיגול", "круг"},
	"triangle":  {"triangle", "משולש", "треугольник"},
	"square":    {"square", "ריבוע", "квадрат"},
	"rectangle": {"rectangle", "מלבן", "прямоугольник"},
	"pentagon":  {"pentagon", "מחומש", "пятиугольник"},
	"hexagon":   {"hexagon", "משושה", "шестиугольник"},
	"star":      {"star", "כוכב", "звезда"},
	"heart":     {"heart", "לב", "сердце"},

	"dog":   {"dog", "כלב", "собака"},
	"cat":   {"cat", "חתול", "кошка"},
	"cow":   {"cow", "פרה", "корова"},
	"sheep": {"sheep", "כבשה", "овца"},
	"duck":  {"duck", "ברווז", "утка"},
	"lion":  {"lion", "אריה", "лев"},
	"horse": {"horse", "סוס", "лошадь"},
	"frog":  {"frog", "צפרדע", "лягушка"},

	"apple":  {"apple", "תפוח", "яблоко"},
	"banana": {"banana", "בננה", "банан"},
	"bread":  {"bread", "לחם", "хлеб"},
	"cheese": {"cheese", "גבינה", "сыр"},
	"carrot": {"carrot", "גזר", "морковь"},
	"grapes": {"grapes", "ענבים", "виноград"},
	"milk":   {"milk", "חלב", "молоко"},
	"egg":    {"egg", "ביצה", "яйцо"},
}

// Title returns the display label of item in tag's language.
func Title(it Item, tag language.Tag) string {
	caser := cases.Title(tag)
	switch v := it.(type) {
	case Letter:
		return v.ID
	case Number:
		if v.Value >= 0 && v.Value < len(numberLabels) {
			return caser.String(numberLabels[v.Value].in(tag))
		}
		return strconv.Itoa(v.Value)
	case Color:
		return caser.String(word(v.Name, tag))
	case Shape:
		return caser.String(word(v.Name, tag))
	case Animal:
		return v.Emoji + " " + caser.String(word(v.Name, tag))
	case Food:
		return v.Emoji + " " + caser.String(word(v.Name, tag))
	default:
		panic(fmt.Sprintf("content: unknown item type %T", it))
	}
}

// Detail returns a short second line for item, or "".
func Detail(it Item) string {
	switch v := it.(type) {
	case Letter:
		return v.Lang
	case Number:
		return strconv.Itoa(v.Value)
	case Color:
		return v.Hex
	case Shape:
		if v.Sides == 0 {
			return "round"
		}
		return fmt.Sprintf("%d sides", v.Sides)
	case Animal:
		return v.Sound
	case Food:
		return ""
	default:
		panic(fmt.Sprintf("content: unknown item type %T", it))
	}
}

func word(key string, tag language.Tag) string {
	if l, ok := wordLabels[key]; ok {
		return l.in(tag)
	}
	return key
}
