// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/gpufilter/gl"
	"github.com/gogpu/gpufilter/gl/soft"
)

func TestSoftwareRegistered(t *testing.T) {
	if !IsRegistered(Software) {
		t.Fatal("software backend not registered")
	}
	fns, err := Get(Software, nil)
	if err != nil {
		t.Fatalf("Get(software) error = %v", err)
	}
	if _, ok := fns.(*soft.Device); !ok {
		t.Errorf("Get(software) = %T, want *soft.Device", fns)
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("vulkan", nil)
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("Get(vulkan) error = %v, want ErrUnknownBackend", err)
	}
}

func TestDefaultPriority(t *testing.T) {
	t.Cleanup(func() { Unregister(Desktop) })

	fake := soft.New()
	Register(Desktop, func(Loader) (gl.Functions, error) { return fake, nil })
	fns, name, err := Default(nil)
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if name != Desktop || fns != gl.Functions(fake) {
		t.Errorf("Default() = %s, want desktop", name)
	}
}

func TestDefaultFallsBack(t *testing.T) {
	t.Cleanup(func() {
		Unregister(Desktop)
		Unregister(Dynamic)
	})

	boom := errors.New("no display")
	fake := soft.New()
	Register(Desktop, func(Loader) (gl.Functions, error) { return nil, boom })
	Register(Dynamic, func(Loader) (gl.Functions, error) { return fake, nil })
	fns, name, err := Default(nil)
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if name != Dynamic || fns != gl.Functions(fake) {
		t.Errorf("Default() picked %s, want dynamic", name)
	}
}

func TestDefaultNeverPicksSoftware(t *testing.T) {
	t.Cleanup(func() { Unregister(Desktop) })

	if !IsRegistered(Software) {
		t.Fatal("software backend not registered")
	}
	boom := errors.New("no display")
	Register(Desktop, func(Loader) (gl.Functions, error) { return nil, boom })

	fns, name, err := Default(nil)
	if err == nil {
		t.Fatalf("Default() = %T (%s), want error", fns, name)
	}
	if !errors.Is(err, ErrBackendNotAvailable) || !errors.Is(err, boom) {
		t.Errorf("Default() error = %v, want ErrBackendNotAvailable wrapping the cause", err)
	}
	if name == Software {
		t.Errorf("Default() picked software")
	}
}

func TestDefaultOnlySoftware(t *testing.T) {
	_, _, err := Default(nil)
	if !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("Default() error = %v, want ErrBackendNotAvailable", err)
	}
}

func TestAvailableSorted(t *testing.T) {
	t.Cleanup(func() { Unregister("aaa") })
	Register("aaa", func(Loader) (gl.Functions, error) { return soft.New(), nil })
	names := Available()
	if !slices.IsSorted(names) || !slices.Contains(names, "aaa") {
		t.Errorf("Available() = %v", names)
	}
}
