package scene

type EventType int

const (
	EventCityGenerated EventType = iota
	EventThemeChanged
	EventFireworks
)

type Event struct {
	Type    EventType
	X, Y, Z float64
	Data    int      // generic payload (building count, theme index, particle count)
	Retired []uint64 // building IDs whose cached geometry must be released
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
