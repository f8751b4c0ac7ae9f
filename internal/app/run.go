// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package app

import (
	"errors"
	"fmt"

	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/triangle"
	"github.com/gogpu/triangle/internal/gpu"
)

// Run opens a window described by cfg and draws the triangle into it every
// frame until the window is closed.
//
// The GPU device is shared with gogpu. If gogpu cannot provide one, the
// window is closed and the returned error wraps triangle.ErrNoGPU.
func Run(cfg triangle.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	rc, err := gpu.RendererConfigFrom(cfg)
	if err != nil {
		return err
	}

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(cfg.Title).
		WithSize(cfg.Width, cfg.Height).
		WithContinuousRender(cfg.ContinuousRender))

	win := newWindow(rc, func() gpucontext.DeviceProvider { return app.GPUContextProvider() })

	app.OnDraw(func(dc *gogpu.Context) {
		if win.frames() == 0 && win.err == nil {
			triangle.Logger().Info("surface ready", "backend", fmt.Sprint(dc.Backend()))
		}
		sw, sh := dc.SurfaceSize()
		if win.drawFrame(dc.SurfaceView(), int(sw), int(sh)) {
			app.Quit()
		}
	})
	app.OnClose(win.close)

	if err := app.Run(); err != nil {
		return fmt.Errorf("app: run: %w", err)
	}
	return win.err
}

// window holds the per-window state driven by gogpu's draw callback.
type window struct {
	config   gpu.RendererConfig
	provider func() gpucontext.DeviceProvider

	dev  *gpu.Device
	loop *FrameLoop

	// err is the error that stopped rendering, if any.
	err error
}

func newWindow(config gpu.RendererConfig, provider func() gpucontext.DeviceProvider) *window {
	return &window{config: config, provider: provider}
}

// drawFrame renders one frame into surfaceView and reports whether the
// window must be closed. The shared device is acquired on the first call.
func (w *window) drawFrame(surfaceView any, width, height int) (quit bool) {
	if w.err != nil {
		return true
	}
	if w.loop == nil {
		dev, err := deviceFromProvider(w.provider())
		if err != nil {
			triangle.Logger().Error("WebGPU is not supported", "err", err)
			w.err = err
			return true
		}
		w.dev = dev
		w.loop = NewFrameLoop(dev, w.config)
	}

	if width <= 0 || height <= 0 {
		return false
	}
	view, err := gpu.SurfaceTextureView(surfaceView)
	if err != nil {
		triangle.Logger().Warn("frame skipped", "err", err)
		return false
	}

	if err := w.loop.Draw(width, height, view); err != nil {
		triangle.Logger().Error("frame failed", "frame", w.loop.Frames(), "err", err)
		if errors.Is(err, triangle.ErrNoGPU) || errors.Is(err, triangle.ErrRendererClosed) {
			w.err = err
			return true
		}
	}
	return false
}

func (w *window) frames() uint64 {
	if w.loop == nil {
		return 0
	}
	return w.loop.Frames()
}

// close releases the renderer and the shared device handle.
func (w *window) close() {
	if w.loop != nil {
		triangle.Logger().Info("window closed", "frames", w.loop.Frames(), "skipped", w.loop.Skipped())
		w.loop.Close()
		w.loop = nil
	}
	if w.dev != nil {
		w.dev.Close()
		w.dev = nil
	}
}

// deviceFromProvider adapts gogpu's device provider to a shared gpu.Device.
func deviceFromProvider(provider gpucontext.DeviceProvider) (*gpu.Device, error) {
	if provider == nil {
		return nil, fmt.Errorf("%w: no device provider", triangle.ErrNoGPU)
	}
	dev, err := gpu.DeviceFromProvider(provider)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", triangle.ErrNoGPU, err)
	}
	return dev, nil
}
