package reminder

import "strings"

// Datos que una plantilla de mensaje puede interpolar.
type TemplateData struct {
	ClientName  string
	Date        string
	Time        string
	ServiceName string
}

// Render sustituye los marcadores {{cliente}}, {{fecha}}, {{hora}} y
// {{servicio}} del cuerpo de la plantilla. Marcadores desconocidos se
// dejan tal cual para que el error sea visible en el mensaje de prueba.
func Render(body string, data TemplateData) string {
	r := strings.NewReplacer(
		"{{cliente}}", data.ClientName,
		"{{fecha}}", data.Date,
		"{{hora}}", data.Time,
		"{{servicio}}", data.ServiceName,
	)
	return r.Replace(body)
}
