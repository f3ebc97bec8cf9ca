// Package audit define el puerto del sink de auditoría/telemetría.
package audit

// Recorder registra eventos de negocio y errores para auditoría.
// Es fire-and-forget: no devuelve error; un fallo al registrar nunca
// debe hacer fallar la operación de negocio que lo disparó.
type Recorder interface {
	RecordEvent(name string, data map[string]interface{})
	RecordError(err error, ctx map[string]interface{})
}

// NopRecorder descarta todo. Útil en tests y como default seguro.
type NopRecorder struct{}

func (NopRecorder) RecordEvent(string, map[string]interface{}) {}
func (NopRecorder) RecordError(error, map[string]interface{})  {}
