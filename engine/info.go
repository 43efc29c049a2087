package engine

import (
	"bytes"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// info renders the server stats text. Sections that cannot be
// collected are skipped rather than failing the command.
func (s *State) info() ReturnValue {
	var buf bytes.Buffer

	buf.WriteString("# Server\r\n")
	if hi, err := host.Info(); err == nil {
		fmt.Fprintf(&buf, "os:%s\r\n", hi.OS)
		fmt.Fprintf(&buf, "arch:%s\r\n", hi.KernelArch)
		fmt.Fprintf(&buf, "uptime_in_seconds:%d\r\n", hi.Uptime)
	}
	fmt.Fprintf(&buf, "go_version:%s\r\n", runtime.Version())
	fmt.Fprintf(&buf, "goroutines:%d\r\n", runtime.NumGoroutine())

	buf.WriteString("# Memory\r\n")
	if vm, err := mem.VirtualMemory(); err == nil {
		fmt.Fprintf(&buf, "total_system_memory:%d\r\n", vm.Total)
		fmt.Fprintf(&buf, "used_memory_rss:%d\r\n", vm.Used)
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	fmt.Fprintf(&buf, "used_memory:%d\r\n", ms.Alloc)

	buf.WriteString("# Keyspace\r\n")
	fmt.Fprintf(&buf, "keys:%d\r\n", s.registry.Size())

	return StringRes{Val: buf.Bytes()}
}
