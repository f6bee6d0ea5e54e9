// Package realtime define el puerto de notificaciones en tiempo real.
// La implementación vive en interfaces/ws; los casos de uso solo conocen
// este contrato (DIP, igual que los repositorios).
package realtime

// Notifier publica eventos de entidad hacia los clientes conectados.
// Las implementaciones no deben bloquear al llamador.
type Notifier interface {
	// Saved notifica que un registro fue creado o actualizado.
	// El evento emitido es "<entity>:save" con el registro serializado.
	Saved(entity string, payload any)
	// Removed notifica que un registro fue eliminado.
	// El evento emitido es "<entity>:remove" con el id del registro.
	Removed(entity string, id string)
}

// NopNotifier implementación nula para tests y arranques sin canal realtime.
type NopNotifier struct{}

func (NopNotifier) Saved(entity string, payload any) {}
func (NopNotifier) Removed(entity string, id string) {}
