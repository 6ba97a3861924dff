// Package export renders tasks as an HTML table over the fixed month axis.
// Spreadsheet software opens the markup as a formatted sheet.
package export

import (
	"html"
	"strings"

	"gantt/internal/model"
	"gantt/internal/timeline"
)

// BuildTable builds the export table for the given tasks: one row per task,
// one indented row per subtask and a blank separator row between task blocks.
// A month cell is marked "X" when the month falls inside the row's range.
func BuildTable(tasks []model.Task) string {
	var b strings.Builder
	b.WriteString(`<table border="1" cellpadding="5" cellspacing="0">`)

	// Заголовки — такие же, как в таблице Ганта
	b.WriteString("<tr>")
	b.WriteString("<th><b>Задача</b></th>")
	b.WriteString("<th><b>Проект</b></th>")
	for _, m := range timeline.AvailableMonths {
		b.WriteString("<th><b>" + timeline.MonthNames[m] + "</b></th>")
	}
	b.WriteString("<th><b>Выполнено</b></th>")
	b.WriteString("</tr>")

	for i, task := range tasks {
		startMonth := monthOrDefault(task.StartMonth)
		endMonth := monthOrDefault(task.EndMonth)

		// Основная задача — жирным текстом
		b.WriteString("<tr>")
		b.WriteString("<td><b>" + html.EscapeString(task.Name) + "</b></td>")
		b.WriteString("<td><b>" + html.EscapeString(task.Tag) + "</b></td>")
		writeMonthCells(&b, startMonth, endMonth)
		if task.Completed {
			b.WriteString("<td>Да</td>")
		} else {
			b.WriteString("<td>Нет</td>")
		}
		b.WriteString("</tr>")

		// Подзадачи — тонким шрифтом; без собственного периода наследуют родительский
		for _, st := range task.Subtasks {
			stStart := startMonth
			if st.StartMonth != nil {
				stStart = *st.StartMonth
			}
			stEnd := endMonth
			if st.EndMonth != nil {
				stEnd = *st.EndMonth
			}

			b.WriteString("<tr>")
			b.WriteString(`<td class="subtask" style="font-weight: 300; font-style: normal;">  └─ ` +
				html.EscapeString(st.Name) + "</td>")
			b.WriteString("<td></td>")
			writeMonthCells(&b, stStart, stEnd)
			b.WriteString("<td></td>")
			b.WriteString("</tr>")
		}

		// Пустая строка между блоками задач (кроме последнего)
		if i < len(tasks)-1 {
			b.WriteString("<tr>")
			for n := 0; n < len(timeline.AvailableMonths)+3; n++ {
				b.WriteString("<td></td>")
			}
			b.WriteString("</tr>")
		}
	}

	b.WriteString("</table>")
	return b.String()
}

func writeMonthCells(b *strings.Builder, start, end int) {
	for _, m := range timeline.AvailableMonths {
		if timeline.InRange(m, start, end) {
			b.WriteString("<td>X</td>")
		} else {
			b.WriteString("<td></td>")
		}
	}
}

func monthOrDefault(m *int) int {
	if m != nil {
		return *m
	}
	return timeline.AvailableMonths[0]
}
