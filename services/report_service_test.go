package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
	"github.com/yeremiapane/pidey-coffee/models"
)

func TestBuildOrdersWorkbook(t *testing.T) {
	order := sampleOrder()
	order.CreatedAt = time.Date(2026, 1, 2, 9, 30, 0, 0, time.UTC)

	file, err := BuildOrdersWorkbook([]models.Order{order})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, file.Write(&buf))

	parsed, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)

	orders := parsed.Sheet["Orders"]
	require.NotNil(t, orders)
	require.Len(t, orders.Rows, 2)
	assert.Equal(t, "SN", orders.Rows[0].Cells[0].Value)

	row := orders.Rows[1]
	assert.Equal(t, "CS-20260102-001", row.Cells[0].Value)
	assert.Equal(t, "2026-01-02 09:30:00", row.Cells[1].Value)
	assert.Equal(t, "PENDING", row.Cells[2].Value)
	assert.Equal(t, "2", row.Cells[3].Value)
	assert.Equal(t, "3", row.Cells[4].Value)
	assert.Equal(t, "76000", row.Cells[5].Value)

	items := parsed.Sheet["Items"]
	require.NotNil(t, items)
	require.Len(t, items.Rows, 3)
	assert.Equal(t, "latte", items.Rows[2].Cells[1].Value)
	assert.Equal(t, "56000", items.Rows[2].Cells[5].Value)
}
