package render

import (
	"fmt"
	"io"
	"strconv"
)

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/timtadh/linkfs"
)

// Disk writes one row per block: its index, its data and its successor.
// Free blocks show "free" and "-".
func Disk(w io.Writer, blocks []linkfs.BlockInfo) error {
	rows := make([][]string, 0, len(blocks))
	for _, b := range blocks {
		if b.Free {
			rows = append(rows, []string{strconv.Itoa(int(b.Index)), "free", "-"})
			continue
		}
		rows = append(rows, []string{strconv.Itoa(int(b.Index)), b.Data.String(), b.Next.String()})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(blocks) && blocks[row].Free {
				return freeStyle
			}
			return cellStyle
		}).
		Headers("Index", "Data", "Next").
		Rows(rows...)
	_, err := fmt.Fprintf(w, "%s\n%s\n", titleStyle.Render("Disk"), t.String())
	return err
}

// Files writes the file table, or a single line when there are no
// files.
func Files(w io.Writer, files []linkfs.FileInfo) error {
	if len(files) == 0 {
		_, err := fmt.Fprintln(w, "no files")
		return err
	}
	rows := make([][]string, 0, len(files))
	for _, f := range files {
		rows = append(rows, []string{f.Name, strconv.Itoa(f.Size), strconv.Itoa(int(f.Start))})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("Name", "Size", "Start").
		Rows(rows...)
	_, err := fmt.Fprintf(w, "%s\n%s\n", titleStyle.Render("Files"), t.String())
	return err
}

// Ok and Error format the one line result of a command.
func Ok(w io.Writer, format string, args ...interface{}) error {
	_, err := fmt.Fprintln(w, okStyle.Render(fmt.Sprintf(format, args...)))
	return err
}

func Error(w io.Writer, err error) error {
	_, werr := fmt.Fprintln(w, errStyle.Render("error: "+err.Error()))
	return werr
}
