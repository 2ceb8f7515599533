// Copyright 2024 The Chromium OS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package sysinfo collects a snapshot of the device's state at the start of
// a run. Failures on an individual probe degrade to missing fields rather
// than aborting the run; the snapshot is diagnostic context for humans
// reading results, not an input to classification.
package sysinfo

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"go.chromium.org/igt/internal/logging"
)

// Snapshot describes the device a run executed on.
type Snapshot struct {
	// Hostname is the device's hostname.
	Hostname string `json:"hostname,omitempty"`
	// OS identifies the platform and version, e.g. "linux 6.1.0".
	OS string `json:"os,omitempty"`
	// KernelVersion is the running kernel's version string.
	KernelVersion string `json:"kernelVersion,omitempty"`
	// Arch is the kernel's reported architecture.
	Arch string `json:"arch,omitempty"`
	// CPUModel is the model name of the first CPU.
	CPUModel string `json:"cpuModel,omitempty"`
	// NumCPU is the number of logical CPUs.
	NumCPU int `json:"numCpu,omitempty"`
	// MemTotal is the total usable RAM in bytes.
	MemTotal uint64 `json:"memTotal,omitempty"`
}

// Collect gathers a best-effort snapshot of the current device.
func Collect(ctx context.Context) *Snapshot {
	var s Snapshot

	if hi, err := host.InfoWithContext(ctx); err != nil {
		logging.Debug(ctx, "Failed to read host info: ", err)
	} else {
		s.Hostname = hi.Hostname
		s.OS = strings.TrimSpace(hi.OS + " " + hi.PlatformVersion)
		s.KernelVersion = hi.KernelVersion
		s.Arch = hi.KernelArch
	}

	if cis, err := cpu.InfoWithContext(ctx); err != nil {
		logging.Debug(ctx, "Failed to read CPU info: ", err)
	} else if len(cis) > 0 {
		s.CPUModel = cis[0].ModelName
		s.NumCPU = len(cis)
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		logging.Debug(ctx, "Failed to read memory info: ", err)
	} else {
		s.MemTotal = vm.Total
	}

	return &s
}

// String formats the snapshot as a single human-readable line.
func (s *Snapshot) String() string {
	var parts []string
	if s.Hostname != "" {
		parts = append(parts, s.Hostname)
	}
	if s.OS != "" {
		parts = append(parts, s.OS)
	}
	if s.KernelVersion != "" {
		parts = append(parts, "kernel "+s.KernelVersion)
	}
	if s.CPUModel != "" {
		parts = append(parts, fmt.Sprintf("%s x%d", s.CPUModel, s.NumCPU))
	}
	if s.MemTotal != 0 {
		parts = append(parts, fmt.Sprintf("%d MB RAM", s.MemTotal/(1024*1024)))
	}
	if len(parts) == 0 {
		return "unknown device"
	}
	return strings.Join(parts, ", ")
}
