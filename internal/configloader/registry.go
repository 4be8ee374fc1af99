// Package configloader provides a generic runtime registry for configuration
// instances in phonebook. It lets the CLI bootstrap register the loaded
// configuration once and subcommands retrieve it in a type-safe manner.
//
// Typical usage:
//
//	configloader.SetConfig(cfg)
//	cfg := configloader.MustGetConfig[*config.Config]()
package configloader

import (
	"fmt"
	"reflect"
	"sync"
)

var registry sync.Map // key = reflect.Type of the config type, value = registered config instance

func typeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// SetConfig registers cfg for global access, replacing any instance of the
// same type.
func SetConfig[T any](cfg T) {
	registry.Store(typeKey[T](), cfg)
}

// MustGetConfig retrieves the registered config instance of type T.
//
// It panics if no config of type T has been registered.
func MustGetConfig[T any]() T {
	if val, ok := TryGetConfig[T](); ok {
		return val
	}
	panic(fmt.Sprintf("no config registered for type %v", typeKey[T]()))
}

// TryGetConfig retrieves the registered config instance of type T.
//
// It returns (zero-value, false) if the config was not found.
func TryGetConfig[T any]() (T, bool) {
	if val, ok := registry.Load(typeKey[T]()); ok {
		return val.(T), true
	}
	var zero T
	return zero, false
}

// UnregisterConfig drops the instance of type T, if any.
func UnregisterConfig[T any]() {
	registry.Delete(typeKey[T]())
}
