package loader

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/ziadkadry99/blockdeco/internal/blocks/accordion"
	"github.com/ziadkadry99/blockdeco/internal/blocks/hero"
	"github.com/ziadkadry99/blockdeco/internal/blocks/tabs"
)

// Builtin returns the decorators shipped with blockdeco, keyed by block name.
func Builtin() map[string]Decorator {
	return map[string]Decorator{
		accordion.Name: DecoratorFunc(accordion.Decorate),
		hero.Name:      DecoratorFunc(func(b *html.Node) { hero.Decorate(b) }),
		tabs.Name:      DecoratorFunc(func(b *html.Node) { tabs.Decorate(b) }),
	}
}

// BuiltinNames returns the names of the built-in decorators, sorted.
func BuiltinNames() []string {
	var names []string
	for name := range Builtin() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default creates a Loader with the built-in decorators named in enabled.
// Extra options are applied after the built-ins, so they may add or
// override decorators.
func Default(enabled []string, opts ...Option) (*Loader, error) {
	builtin := Builtin()

	all := make([]Option, 0, len(enabled)+len(opts))
	for _, name := range enabled {
		name = strings.ToLower(strings.TrimSpace(name))
		d, ok := builtin[name]
		if !ok {
			return nil, fmt.Errorf("unknown block %q: must be one of %s", name, strings.Join(BuiltinNames(), ", "))
		}
		all = append(all, WithDecorator(name, d))
	}
	all = append(all, opts...)
	return New(all...), nil
}
