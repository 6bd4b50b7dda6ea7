// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import "github.com/nesguin/emu6502/cpu"

// The debugHandler receives notifications from the cpu debugger and
// forwards them to the host.
type debugHandler struct {
	host *Host
}

func newDebugHandler(h *Host) *debugHandler {
	return &debugHandler{host: h}
}

func (h *debugHandler) OnBreakpoint(c *cpu.CPU, b *cpu.Breakpoint) {
	h.host.onBreakpoint(c, b)
}

func (h *debugHandler) OnDataBreakpoint(c *cpu.CPU, b *cpu.DataBreakpoint) {
	h.host.onDataBreakpoint(c, b)
}

// The noticeWriter sends CPU log output to the host's output while the
// ShowNotices setting is enabled.
type noticeWriter struct {
	host *Host
}

func (w noticeWriter) Write(p []byte) (int, error) {
	h := w.host
	if h.output == nil || !h.settings.ShowNotices {
		return len(p), nil
	}
	n, err := h.output.Write(p)
	h.flush()
	return n, err
}
