package editor

import (
	"fmt"

	"github.com/Garsondee/board-editor/internal/board"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// MutationKind names what happened to the board.
type MutationKind uint8

const (
	PieceDragStarted MutationKind = iota
	PieceDropped
	PieceDeleted
	PieceDrawn
	MarkerPlaced
	MarkersCleared
)

var mutationKindNames = [...]string{
	PieceDragStarted: "drag_started",
	PieceDropped:     "dropped",
	PieceDeleted:     "deleted",
	PieceDrawn:       "drawn",
	MarkerPlaced:     "marker_placed",
	MarkersCleared:   "markers_cleared",
}

func (k MutationKind) String() string {
	if int(k) < len(mutationKindNames) {
		return mutationKindNames[k]
	}
	return fmt.Sprintf("mutation(%d)", uint8(k))
}

// Mutation is one decided change, already applied to the grid, on its way to
// the listeners that derive visual state from it.
type Mutation struct {
	Tick int
	Kind MutationKind
	// Piece is a snapshot taken when the mutation was decided. Unset for
	// marker mutations.
	Piece board.Piece
	// Cell is the pickup cell for drag starts, the landing cell for drops, the
	// vacated cell for deletes and the target cell for draws and markers.
	Cell board.Coord
	// Cleared lists the cells of removed markers.
	Cleared []board.Coord
}

// Listener consumes mutations in publish order.
type Listener func(Mutation)

// mutationEvents is a single queue so that kinds keep their relative order.
var mutationEvents = events.NewEventType[Mutation]()

// Bus delivers mutations published during a tick when Flush is called at the
// end of that tick. Nothing carries over to the next tick.
type Bus struct {
	world   donburi.World
	names   []string
	pending int
}

// NewBus attaches a bus to an ECS world.
func NewBus(world donburi.World) *Bus {
	return &Bus{world: world}
}

// Subscribe adds a listener. Listeners run in subscription order.
func (b *Bus) Subscribe(name string, fn Listener) {
	b.names = append(b.names, name)
	mutationEvents.Subscribe(b.world, func(_ donburi.World, m Mutation) {
		fn(m)
	})
}

// Listeners returns the subscribed listener names in delivery order.
func (b *Bus) Listeners() []string {
	return append([]string(nil), b.names...)
}

// Publish queues a mutation for the next Flush.
func (b *Bus) Publish(m Mutation) {
	mutationEvents.Publish(b.world, m)
	b.pending++
}

// Pending returns the number of queued mutations.
func (b *Bus) Pending() int {
	return b.pending
}

// Flush delivers every queued mutation and returns how many there were.
func (b *Bus) Flush() int {
	n := b.pending
	if n == 0 {
		return 0
	}
	mutationEvents.ProcessEvents(b.world)
	b.pending = 0
	return n
}
