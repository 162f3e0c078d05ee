package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"instreg/pkg/registry"
)

// EntryMarkdown 生成描述单个条目的 Markdown 文本
func EntryMarkdown(entry registry.Entry) string {
	goType := "<nil>"
	if entry.TypeHandle != nil {
		goType = entry.TypeHandle.String()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", entry.Name)
	b.WriteString("| 字段 | 值 |\n|---|---|\n")
	fmt.Fprintf(&b, "| 名称 | `%s` |\n", entry.Name)
	fmt.Fprintf(&b, "| 类型标签 | `%s` |\n", entry.Type)
	fmt.Fprintf(&b, "| Go 类型 | `%s` |\n", goType)

	b.WriteString("\n## 实例\n\n```\n")
	if s, ok := entry.Instance.(fmt.Stringer); ok {
		b.WriteString(s.String())
	} else {
		fmt.Fprintf(&b, "%+v", entry.Instance)
	}
	b.WriteString("\n```\n")
	return b.String()
}

// NewMarkdownRenderer 创建 Markdown 渲染器，style 为空时自动检测终端样式
func NewMarkdownRenderer(style string, width int) (*glamour.TermRenderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("创建Markdown渲染器失败: %w", err)
	}
	return renderer, nil
}

// Entry 把条目渲染为终端可显示的文本
func Entry(renderer *glamour.TermRenderer, entry registry.Entry) (string, error) {
	return renderer.Render(EntryMarkdown(entry))
}
