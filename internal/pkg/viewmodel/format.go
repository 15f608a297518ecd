package viewmodel

import (
	"fmt"
	"strings"

	"github.com/gofiber/template/html/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Money formats a premium as dollars and cents, e.g. $1,234.50.
func Money(v float64) string {
	return printer.Sprintf("$%.2f", v)
}

// Amount formats a coverage limit in whole dollars, e.g. $250,000.
func Amount(v float64) string {
	return printer.Sprintf("$%.0f", v)
}

// Initials returns up to two upper-case initials for the avatar badge.
func Initials(name string) string {
	var out []rune
	for _, part := range strings.Fields(name) {
		out = append(out, []rune(strings.ToUpper(part))[0])
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}

// Dict builds a map from key/value pairs so a partial can get more than one value.
func Dict(pairs ...interface{}) (map[string]interface{}, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict needs key/value pairs, got %d arguments", len(pairs))
	}
	out := make(map[string]interface{}, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict key %v is not a string", pairs[i])
		}
		out[key] = pairs[i+1]
	}
	return out, nil
}

// NewEngine returns the html template engine with the view helpers registered.
func NewEngine(dir string) *html.Engine {
	engine := html.New(dir, ".html")
	engine.AddFunc("money", Money)
	engine.AddFunc("amount", Amount)
	engine.AddFunc("initials", Initials)
	engine.AddFunc("dict", Dict)
	return engine
}
