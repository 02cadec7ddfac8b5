package events

type TouchEvent struct {
	ObjectType string
	ColorName  string
	Total      int
	Streak     int
}

type MilestoneEvent struct {
	Value int
}

// RefreshEvent fires when the animation seed changes mid-session to vary the
// layout.
type RefreshEvent struct {
	Seed int
}

type Bus struct {
	Touches    chan TouchEvent
	Milestones chan MilestoneEvent
	Refreshes  chan RefreshEvent
}

func NewBus() *Bus {
	return &Bus{
		Touches:    make(chan TouchEvent, 64),
		Milestones: make(chan MilestoneEvent, 10),
		Refreshes:  make(chan RefreshEvent, 10),
	}
}

// PublishTouch drops the event if no consumer is keeping up; the interactive
// path never blocks on observers.
func (b *Bus) PublishTouch(ev TouchEvent) {
	select {
	case b.Touches <- ev:
	default:
	}
}

func (b *Bus) PublishMilestone(ev MilestoneEvent) {
	select {
	case b.Milestones <- ev:
	default:
	}
}

func (b *Bus) PublishRefresh(ev RefreshEvent) {
	select {
	case b.Refreshes <- ev:
	default:
	}
}
