package launchpad

import "fmt"

// Button is the public descriptor for one physical button. Grid buttons are
// named by their coordinates ("00" is the top-left pad, x then y digit); the
// right-edge and top-row buttons carry their printed labels.
type Button struct {
	Name string
	X, Y int
	Grid bool // X,Y are meaningful only for grid buttons
}

// buttonKey is the protocol-addressing record for a button. Exactly one
// keyspace applies: grid, right-edge and per-row buttons are note-keyed,
// the top row is automap-keyed (sent and received as control changes).
type buttonKey struct {
	note    uint8
	automap uint8
	isNote  bool
}

// Order selects one of the two fixed button orderings.
type Order int

const (
	// OrderPhysical interleaves for display: the 8 top buttons first, then
	// for each row the 8 grid buttons followed by that row's edge button.
	OrderPhysical Order = iota
	// OrderBatch is the rapid-update wire order: all 64 grid buttons
	// row-major, then the 8 edge buttons, then the 8 top buttons.
	OrderBatch
)

var sideNames = [8]string{"Vol", "Pan", "SendA", "SendB", "Stop", "TrackOn", "Solo", "Arm"}

var topNames = [8]string{"Up", "Down", "Left", "Right", "Session", "User1", "User2", "Mixer"}

var (
	allButtons       []*Button
	buttonKeys       map[string]buttonKey
	buttonsByName    map[string]*Button
	buttonsByNote    map[uint8]*Button
	buttonsByAutomap map[uint8]*Button

	// Both orderings are static for the process lifetime; computed once here
	// rather than lazily on first access.
	batchOrder    []*Button
	physicalOrder []*Button
)

func init() {
	buttonKeys = make(map[string]buttonKey, 80)
	buttonsByName = make(map[string]*Button, 80)
	buttonsByNote = make(map[uint8]*Button, 72)
	buttonsByAutomap = make(map[uint8]*Button, 8)

	// Note math per the Launchpad programmer's reference: grid note is
	// 16*y + x, the edge button of row y is 16*y + 8, automap is 104 + i.
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			register(&Button{Name: fmt.Sprintf("%d%d", x, y), X: x, Y: y, Grid: true},
				buttonKey{note: uint8(16*y + x), isNote: true})
		}
	}
	for y, name := range sideNames {
		register(&Button{Name: name}, buttonKey{note: uint8(16*y + 8), isNote: true})
	}
	for i, name := range topNames {
		register(&Button{Name: name}, buttonKey{automap: uint8(104 + i)})
	}

	batchOrder = make([]*Button, 0, len(allButtons))
	physicalOrder = make([]*Button, 0, len(allButtons))

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			batchOrder = append(batchOrder, buttonsByName[fmt.Sprintf("%d%d", x, y)])
		}
	}
	for _, name := range sideNames {
		batchOrder = append(batchOrder, buttonsByName[name])
	}
	for _, name := range topNames {
		batchOrder = append(batchOrder, buttonsByName[name])
	}

	for _, name := range topNames {
		physicalOrder = append(physicalOrder, buttonsByName[name])
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			physicalOrder = append(physicalOrder, buttonsByName[fmt.Sprintf("%d%d", x, y)])
		}
		physicalOrder = append(physicalOrder, buttonsByName[sideNames[y]])
	}
}

func register(b *Button, key buttonKey) {
	allButtons = append(allButtons, b)
	buttonKeys[b.Name] = key
	buttonsByName[b.Name] = b
	if key.isNote {
		buttonsByNote[key.note] = b
	} else {
		buttonsByAutomap[key.automap] = b
	}
}

// Buttons returns every button in the requested order.
func Buttons(order Order) []*Button {
	src := physicalOrder
	if order == OrderBatch {
		src = batchOrder
	}
	out := make([]*Button, len(src))
	copy(out, src)
	return out
}

// ButtonByName looks up a button by its name.
func ButtonByName(name string) (*Button, bool) {
	b, ok := buttonsByName[name]
	return b, ok
}
