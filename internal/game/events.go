package game

type EventType int

const (
	EventFoodEaten EventType = iota
	EventGameOver
	EventTurn
)

type Event struct {
	Type      EventType
	Head      Point
	Score     int
	Length    int
	Direction Direction
	Collision Collision // Set for EventGameOver.
}

type EventHandler func(Event)

// EventBus delivers events synchronously on the emitting goroutine.
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
