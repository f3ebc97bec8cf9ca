// Package telemetry implementa el sink de auditoría sobre zerolog.
package telemetry

import (
	"github.com/tu-usuario/crm-eventos/internal/application/audit"
	"github.com/tu-usuario/crm-eventos/pkg/logger"
)

var _ audit.Recorder = (*Recorder)(nil)

// Recorder registra eventos de auditoría como logs estructurados.
// Un fallo al registrar jamás escala: se recupera cualquier pánico propio
// para que la operación de negocio que disparó el evento nunca falle por esto.
type Recorder struct {
	log *logger.Logger
}

// NewRecorder construye el recorder sobre el logger de la aplicación.
func NewRecorder(log *logger.Logger) *Recorder {
	return &Recorder{log: log}
}

// RecordEvent registra un evento de negocio con sus datos.
func (r *Recorder) RecordEvent(name string, data map[string]interface{}) {
	defer func() { _ = recover() }()
	r.log.Info().Str("audit_event", name).Fields(data).Msg("audit")
}

// RecordError registra un error con contexto.
func (r *Recorder) RecordError(err error, ctx map[string]interface{}) {
	defer func() { _ = recover() }()
	r.log.Error().Err(err).Fields(ctx).Msg("audit_error")
}
