package archive

import (
	"log"
	"time"
)

// Event es la instantánea de una cita que llegó a estado terminal.
// Se copia por valor: la fila viva puede desaparecer después (borrado
// en cascada del cliente o empleado) sin afectar el historial.
type Event struct {
	AppointmentID uint
	ClientID      uint
	EmployeeID    uint
	ServiceID     uint
	Date          time.Time
	Time          string
	Status        string
	Notes         string
}

type recorder interface {
	Record(ev Event) error
}

// Sink recibe instantáneas terminales rumbo al historial.
type Sink interface {
	Dispatch(ev Event)
}

// Dispatcher desacopla la escritura del historial de la petición:
// el registro terminal es un efecto secundario, nunca debe tumbar la
// respuesta al mostrador.
type Dispatcher struct {
	recorder recorder
	queue    chan Event
}

var _ Sink = (*Dispatcher)(nil)

func NewDispatcher(rec *Recorder) *Dispatcher {
	return newDispatcher(rec, 100)
}

func newDispatcher(rec recorder, size int) *Dispatcher {
	d := &Dispatcher{
		recorder: rec,
		queue:    make(chan Event, size),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.recorder.Record(ev); err != nil {
			log.Println("archive error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// cola llena: se pierde el registro, no la petición
		log.Println("archive queue full, dropping event")
	}
}
