package export_test

import (
	"strings"
	"testing"

	"gantt/internal/export"
	"gantt/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func task(name, tag string, start, end *int, subtasks ...model.Subtask) model.Task {
	return model.Task{
		ID:           uuid.New(),
		Name:         name,
		Tag:          tag,
		DurationType: "months",
		StartMonth:   start,
		EndMonth:     end,
		UserID:       uuid.New(),
		Subtasks:     subtasks,
	}
}

func TestBuildTable_WrapAroundRange(t *testing.T) {
	// Задача с декабря по февраль: отмечены колонки 12, 1 и 2
	table := export.BuildTable([]model.Task{task("Задача A", "Проект", intPtr(12), intPtr(2))})

	// Колонки идут в порядке 12,1,2,3,4,5,6,7
	expectedRow := "<tr><td><b>Задача A</b></td><td><b>Проект</b></td>" +
		"<td>X</td><td>X</td><td>X</td>" +
		"<td></td><td></td><td></td><td></td><td></td>" +
		"<td>Нет</td></tr>"
	assert.Contains(t, table, expectedRow)
}

func TestBuildTable_Header(t *testing.T) {
	table := export.BuildTable(nil)

	assert.Contains(t, table, "<th><b>Задача</b></th>")
	assert.Contains(t, table, "<th><b>Проект</b></th>")
	assert.Contains(t, table, "<th><b>Декабрь</b></th>")
	assert.Contains(t, table, "<th><b>Июль</b></th>")
	assert.Contains(t, table, "<th><b>Выполнено</b></th>")
}

func TestBuildTable_SubtaskInheritsParentRange(t *testing.T) {
	// Подзадача без собственного периода использует период родителя
	st := model.Subtask{ID: uuid.New(), Name: "Подзадача"}
	table := export.BuildTable([]model.Task{task("Задача", "Проект", intPtr(1), intPtr(2), st)})

	assert.Contains(t, table, "└─ Подзадача")
	// Строка подзадачи: колонка 12 пустая, 1 и 2 отмечены
	assert.Contains(t, table,
		"└─ Подзадача</td><td></td><td></td><td>X</td><td>X</td><td></td><td></td><td></td><td></td><td></td><td></td></tr>")
}

func TestBuildTable_SubtaskOwnRange(t *testing.T) {
	// Подзадача с собственным периодом не наследует родительский
	st := model.Subtask{ID: uuid.New(), Name: "Своя", StartMonth: intPtr(3), EndMonth: intPtr(3)}
	table := export.BuildTable([]model.Task{task("Задача", "Проект", intPtr(12), intPtr(7), st)})

	assert.Contains(t, table,
		"└─ Своя</td><td></td><td></td><td></td><td></td><td>X</td><td></td><td></td><td></td><td></td><td></td></tr>")
}

func TestBuildTable_SeparatorRows(t *testing.T) {
	tasks := []model.Task{
		task("Первая", "П1", intPtr(12), intPtr(1)),
		task("Вторая", "П2", intPtr(2), intPtr(3)),
	}
	table := export.BuildTable(tasks)

	// Одна пустая строка-разделитель между двумя задачами, после последней — нет
	separator := "<tr>" + strings.Repeat("<td></td>", 11) + "</tr>"
	assert.Equal(t, 1, strings.Count(table, separator))
	assert.False(t, strings.HasSuffix(table, separator+"</table>"))
}

func TestBuildTable_EscapesNames(t *testing.T) {
	table := export.BuildTable([]model.Task{task("<script>", "A&B", intPtr(1), intPtr(1))})

	assert.Contains(t, table, "&lt;script&gt;")
	assert.Contains(t, table, "A&amp;B")
	assert.NotContains(t, table, "<script>")
}

func TestBuildTable_CompletedColumn(t *testing.T) {
	done := task("Готово", "П", intPtr(1), intPtr(1))
	done.Completed = true
	table := export.BuildTable([]model.Task{done})

	assert.Contains(t, table, "<td>Да</td>")
}

func TestBuildTable_MissingMonthsFallBackToAxisStart(t *testing.T) {
	// Задача без месяцев отмечается в первой колонке оси (декабрь)
	table := export.BuildTable([]model.Task{task("Без месяцев", "П", nil, nil)})

	assert.Contains(t, table,
		"<td><b>П</b></td><td>X</td><td></td><td></td><td></td><td></td><td></td><td></td><td></td>")
}
