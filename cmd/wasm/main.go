//go:build js && wasm
// +build js,wasm

package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/MeKo-Tech/colorconv/internal/converter"
)

// conv starts with the built-in defaults until colorconvInit supplies the
// server's configuration.
var conv = mustConverter(converter.Config{})

func mustConverter(cfg converter.Config) *converter.Converter {
	c, err := converter.New(cfg, nil)
	if err != nil {
		panic(err)
	}
	return c
}

// toJS converts a value into a plain object js.ValueOf accepts.
func toJS(v any) interface{} {
	data, err := json.Marshal(v)
	if err != nil {
		return map[string]interface{}{"error": fmt.Sprintf("failed to encode result: %v", err)}
	}
	var obj map[string]interface{}
	if err := json.Unmarshal(data, &obj); err != nil {
		return map[string]interface{}{"error": fmt.Sprintf("failed to encode result: %v", err)}
	}
	return obj
}

// configFromJS reads a /api/config object. Missing fields keep their defaults.
func configFromJS(v js.Value) converter.Config {
	var cfg converter.Config
	if v.Type() != js.TypeObject {
		return cfg
	}
	if dc := v.Get("default_color"); dc.Type() == js.TypeString {
		cfg.DefaultColor = dc.String()
	}
	if th := v.Get("theme_threshold"); th.Type() == js.TypeNumber {
		cfg.ThemeThreshold = converter.Threshold(th.Float())
	}
	return cfg
}

// convertColor is called from JavaScript with the raw input field value.
func convertColor(this js.Value, args []js.Value) interface{} {
	input := ""
	if len(args) > 0 && args[0].Type() == js.TypeString {
		input = args[0].String()
	}
	return toJS(conv.Convert(input))
}

// initConverter applies an optional config object and returns the fallback
// result so the page can paint its default state.
func initConverter(this js.Value, args []js.Value) interface{} {
	if len(args) > 0 {
		c, err := converter.New(configFromJS(args[0]), nil)
		if err != nil {
			return map[string]interface{}{"error": err.Error()}
		}
		conv = c
	}
	fmt.Println("colorconv WASM module initialized")
	return toJS(conv.Fallback())
}

func main() {
	c := make(chan struct{})

	js.Global().Set("colorconvConvert", js.FuncOf(convertColor))
	js.Global().Set("colorconvInit", js.FuncOf(initConverter))

	fmt.Println("colorconv WASM module loaded")
	<-c
}
