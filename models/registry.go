package models

import (
	"fmt"
	"sort"
	"strings"

	"github.com/flavioheleno/mipidsi/pixel"
)

var registry = map[string]func() Model{
	"gc9107":         func() Model { return GC9107{} },
	"ili9486":        func() Model { return ILI9486{Format: pixel.RGB565} },
	"ili9486-rgb666": func() Model { return ILI9486{Format: pixel.RGB666} },
	"ili9488":        func() Model { return ILI9488{Format: pixel.RGB565} },
	"ili9488-rgb666": func() Model { return ILI9488{Format: pixel.RGB666} },
	"rm67162":        func() Model { return RM67162{} },
	"st7789":         func() Model { return ST7789{} },
}

// ByName returns a model by its lowercase chip name, as listed by Names.
func ByName(name string) (Model, error) {
	f, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("models: unknown model %q", name)
	}
	return f(), nil
}

// Names returns the names accepted by ByName, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
