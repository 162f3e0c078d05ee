package clients

import (
	"context"

	"instreg/internal/common/errors"
	"instreg/internal/config"
	"instreg/internal/util"
	"instreg/pkg/registry"
)

// RegisterAll 构建并依次注册配置中的实例，遇到第一个错误即停止
func RegisterAll(ctx context.Context, reg registry.Registry, instances []config.InstanceConfig) error {
	for _, inst := range instances {
		if err := ctx.Err(); err != nil {
			return errors.WrapError(errors.ErrCodeInitializationFailed, "实例注册被取消", err)
		}

		instance, err := Build(ctx, inst)
		if err != nil {
			return err
		}

		if err := reg.RegisterAs(inst.Name, inst.Type, instance); err != nil {
			return err
		}

		entry, _ := reg.GetEntry(inst.Name)
		util.Debugw("实例已注册", map[string]any{
			"name": inst.Name,
			"kind": inst.Kind,
			"type": entry.Type,
		})
	}
	return nil
}
