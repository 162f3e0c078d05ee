// Package render 把注册表条目渲染为终端表格、JSON、YAML 或 Markdown
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"instreg/internal/common/errors"
	"instreg/pkg/registry"
)

// 支持的输出格式
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true).
			Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

// Write 按指定格式输出条目摘要
func Write(w io.Writer, format string, items []registry.Summary) error {
	switch format {
	case FormatTable, "":
		return Table(w, items)
	case FormatJSON:
		return JSON(w, items)
	case FormatYAML:
		return YAML(w, items)
	default:
		return errors.NewErrorWithDetails(errors.ErrCodeInvalidParam, "不支持的输出格式",
			fmt.Sprintf("格式: %s", format))
	}
}

// Table 以终端表格输出条目摘要
func Table(w io.Writer, items []registry.Summary) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "注册表为空")
		return err
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{item.Name, item.Type})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("NAME", "TYPE").
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// JSON 以缩进的 JSON 数组输出条目摘要
func JSON(w io.Writer, items []registry.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

// YAML 以 YAML 列表输出条目摘要
func YAML(w io.Writer, items []registry.Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(items); err != nil {
		return err
	}
	return enc.Close()
}
