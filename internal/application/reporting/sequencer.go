package reporting

import (
	"sync"
	"sync/atomic"

	"github.com/jhoicas/reportes-taller/internal/domain/report"
)

// Sequencer evita que un snapshot viejo reemplace a uno más nuevo cuando el llamador
// lanza varias solicitudes (ej. el usuario cambia el rango antes de que termine la primera).
// El motor no cancela solicitudes en vuelo; el llamador solo publica lo que Complete acepte.
type Sequencer struct {
	issued atomic.Uint64

	mu        sync.Mutex
	completed uint64
	latest    *report.ReportData
}

// Next reserva el id de una nueva solicitud. Los ids crecen de forma monótona.
func (s *Sequencer) Next() uint64 {
	return s.issued.Add(1)
}

// Complete registra el resultado de la solicitud id. Devuelve false (y descarta data)
// si ya se completó una solicitud más reciente.
func (s *Sequencer) Complete(id uint64, data *report.ReportData) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id <= s.completed {
		return false
	}
	s.completed = id
	s.latest = data
	return true
}

// Latest devuelve el último snapshot aceptado y su id (nil, 0 si no hay ninguno).
func (s *Sequencer) Latest() (*report.ReportData, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest, s.completed
}
