// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"fmt"
	"reflect"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/triangle"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// Device bundles the HAL device and queue used for rendering.
//
// A Device is either owned (created by OpenDevice, destroyed by Close) or
// external (shared by a host such as gogpu, never destroyed here).
type Device struct {
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue

	adapterName string
	external    bool
}

// NewDevice wraps an existing device and queue. The caller keeps ownership.
func NewDevice(device hal.Device, queue hal.Queue) *Device {
	return &Device{
		device:   device,
		queue:    queue,
		external: true,
	}
}

// OpenDevice creates a HAL instance on the Vulkan backend, selects a
// hardware adapter and opens a device on it.
//
// Returns an error wrapping triangle.ErrNoGPU when the backend is not
// compiled in or no adapter is present. The failure is also logged at
// error level.
func OpenDevice() (*Device, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		triangle.Logger().Error("WebGPU is not supported", "reason", "vulkan backend not available")
		return nil, fmt.Errorf("%w: vulkan backend not available", triangle.ErrNoGPU)
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		triangle.Logger().Error("WebGPU is not supported", "err", err)
		return nil, fmt.Errorf("%w: create instance: %w", triangle.ErrNoGPU, err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		triangle.Logger().Error("WebGPU is not supported", "reason", "no GPU adapters found")
		return nil, fmt.Errorf("%w: no GPU adapters found", triangle.ErrNoGPU)
	}
	selected := selectAdapter(adapters)

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("open device: %w", err)
	}

	triangle.Logger().Info("GPU adapter selected", "name", selected.Info.Name)
	return &Device{
		instance:    instance,
		device:      openDev.Device,
		queue:       openDev.Queue,
		adapterName: selected.Info.Name,
	}, nil
}

// selectAdapter prefers a discrete or integrated GPU and falls back to the
// first adapter (software or CPU implementations).
func selectAdapter(adapters []hal.ExposedAdapter) *hal.ExposedAdapter {
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			return &adapters[i]
		}
	}
	return &adapters[0]
}

// DeviceFromProvider shares the GPU device of a host application.
//
// gogpu's GPUContextProvider is a gpucontext.DeviceProvider whose Device and
// Queue wrap the HAL handles behind HalDevice and HalQueue accessors. A
// provider exposing HalDevice() any and HalQueue() any directly is accepted
// as well.
func DeviceFromProvider(provider any) (*Device, error) {
	if isNil(provider) {
		return nil, fmt.Errorf("gpu: nil device provider")
	}

	devSrc, queueSrc := provider, provider
	if dp, ok := provider.(gpucontext.DeviceProvider); ok {
		devSrc, queueSrc = dp.Device(), dp.Queue()
	}

	device, ok := halDevice(devSrc)
	if !ok {
		device, ok = halDevice(provider)
	}
	if !ok {
		return nil, fmt.Errorf("gpu: provider does not expose a hal.Device (got %T)", devSrc)
	}
	queue, ok := halQueue(queueSrc)
	if !ok {
		queue, ok = halQueue(provider)
	}
	if !ok {
		return nil, fmt.Errorf("gpu: provider does not expose a hal.Queue (got %T)", queueSrc)
	}

	triangle.Logger().Debug("using shared GPU device", "provider", fmt.Sprintf("%T", provider))
	return NewDevice(device, queue), nil
}

// halDevice unwraps v, which is either a hal.Device or a wrapper with a
// HalDevice accessor.
func halDevice(v any) (hal.Device, bool) {
	if isNil(v) {
		return nil, false
	}
	var raw any
	switch d := v.(type) {
	case hal.Device:
		return d, true
	case interface{ HalDevice() hal.Device }:
		raw = d.HalDevice()
	case interface{ HalDevice() any }:
		raw = d.HalDevice()
	default:
		return nil, false
	}
	device, ok := raw.(hal.Device)
	return device, ok && !isNil(device)
}

// halQueue unwraps v, which is either a hal.Queue or a wrapper with a
// HalQueue accessor.
func halQueue(v any) (hal.Queue, bool) {
	if isNil(v) {
		return nil, false
	}
	var raw any
	switch q := v.(type) {
	case hal.Queue:
		return q, true
	case interface{ HalQueue() hal.Queue }:
		raw = q.HalQueue()
	case interface{ HalQueue() any }:
		raw = q.HalQueue()
	default:
		return nil, false
	}
	queue, ok := raw.(hal.Queue)
	return queue, ok && !isNil(queue)
}

// isNil reports whether v is nil or a nil pointer stored in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// HAL returns the underlying device and queue.
func (d *Device) HAL() (hal.Device, hal.Queue) {
	return d.device, d.queue
}

// AdapterName returns the selected adapter name, or "" for external devices.
func (d *Device) AdapterName() string {
	return d.adapterName
}

// External reports whether the device is owned by someone else.
func (d *Device) External() bool {
	return d.external
}

// Close destroys an owned device and its instance. External devices are
// only released. Safe to call multiple times.
func (d *Device) Close() {
	if !d.external {
		if d.device != nil {
			d.device.Destroy()
		}
		if d.instance != nil {
			d.instance.Destroy()
		}
	}
	d.device = nil
	d.queue = nil
	d.instance = nil
}
