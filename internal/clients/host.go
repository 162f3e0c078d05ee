package clients

import (
	"context"
	"os"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"

	"instreg/internal/common/errors"
	"instreg/internal/config"
)

// NewProcessProbe 返回当前进程的 gopsutil 句柄
func NewProcessProbe(ctx context.Context, _ config.InstanceConfig) (any, error) {
	p, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
	if err != nil {
		return nil, errors.WrapProbeError("获取当前进程信息失败", err)
	}
	return p, nil
}

// NewHostProbe 返回主机信息快照
func NewHostProbe(ctx context.Context, _ config.InstanceConfig) (any, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, errors.WrapProbeError("获取主机信息失败", err)
	}
	return info, nil
}

// NewMemoryProbe 返回虚拟内存使用快照
func NewMemoryProbe(ctx context.Context, _ config.InstanceConfig) (any, error) {
	vmem, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, errors.WrapProbeError("获取内存信息失败", err)
	}
	return vmem, nil
}
