package reminder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/healthyfeet/salon-scheduler/internal/reminder"
)

func TestRender(t *testing.T) {
	body := "Hola {{cliente}}, te esperamos el {{fecha}} a las {{hora}} para tu {{servicio}}."

	got := reminder.Render(body, reminder.TemplateData{
		ClientName:  "Laura",
		Date:        "2026-09-15",
		Time:        "10:00",
		ServiceName: "Pedicure spa",
	})

	assert.Equal(t, "Hola Laura, te esperamos el 2026-09-15 a las 10:00 para tu Pedicure spa.", got)
}

func TestRender_RepeatedAndUnknownPlaceholders(t *testing.T) {
	body := "{{cliente}} {{cliente}} {{sucursal}}"

	got := reminder.Render(body, reminder.TemplateData{ClientName: "Ana"})

	// los marcadores desconocidos quedan visibles
	assert.Equal(t, "Ana Ana {{sucursal}}", got)
}

func TestRender_EmptyData(t *testing.T) {
	got := reminder.Render("Hola {{cliente}}", reminder.TemplateData{})
	assert.Equal(t, "Hola ", got)
}
